package ml

import (
	"math/rand"
	"sort"
)

// TreeNode is one node of a CART decision tree. Internal nodes route on
// Feature <= Threshold; leaves carry a class distribution.
type TreeNode struct {
	Feature   int       `json:"feature,omitempty"`
	Threshold float64   `json:"threshold,omitempty"`
	Left      *TreeNode `json:"left,omitempty"`
	Right     *TreeNode `json:"right,omitempty"`
	Probs     []float64 `json:"probs,omitempty"`
}

func (n *TreeNode) isLeaf() bool { return n.Left == nil && n.Right == nil }

func (n *TreeNode) predict(x []float64) []float64 {
	node := n
	for !node.isLeaf() {
		if x[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Probs
}

type treeBuilder struct {
	X                [][]float64
	y                []int
	classes          int
	maxDepth         int
	minSamplesLeaf   int
	featuresPerSplit int
	rng              *rand.Rand
}

func (b *treeBuilder) build(indices []int, depth int) *TreeNode {
	counts := make([]float64, b.classes)
	for _, i := range indices {
		counts[b.y[i]]++
	}

	if depth >= b.maxDepth || len(indices) < 2*b.minSamplesLeaf || pure(counts) {
		return b.leaf(counts, len(indices))
	}

	feature, threshold, ok := b.bestSplit(indices)
	if !ok {
		return b.leaf(counts, len(indices))
	}

	var left, right []int
	for _, i := range indices {
		if b.X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < b.minSamplesLeaf || len(right) < b.minSamplesLeaf {
		return b.leaf(counts, len(indices))
	}

	return &TreeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      b.build(left, depth+1),
		Right:     b.build(right, depth+1),
	}
}

func (b *treeBuilder) leaf(counts []float64, total int) *TreeNode {
	probs := make([]float64, b.classes)
	for k, c := range counts {
		probs[k] = c / float64(total)
	}
	return &TreeNode{Probs: probs}
}

func pure(counts []float64) bool {
	nonzero := 0
	for _, c := range counts {
		if c > 0 {
			nonzero++
		}
	}
	return nonzero <= 1
}

// bestSplit scans a random feature subset for the threshold with the lowest
// weighted gini impurity.
func (b *treeBuilder) bestSplit(indices []int) (int, float64, bool) {
	dim := len(b.X[0])
	features := b.rng.Perm(dim)[:b.featuresPerSplit]

	bestGini := gini(classCounts(b.y, indices, b.classes), len(indices))
	bestFeature, bestThreshold := -1, 0.0

	type sample struct {
		value float64
		label int
	}
	samples := make([]sample, len(indices))

	for _, f := range features {
		for i, idx := range indices {
			samples[i] = sample{value: b.X[idx][f], label: b.y[idx]}
		}
		sort.Slice(samples, func(i, j int) bool { return samples[i].value < samples[j].value })

		leftCounts := make([]float64, b.classes)
		rightCounts := classCounts(b.y, indices, b.classes)

		for i := 0; i < len(samples)-1; i++ {
			leftCounts[samples[i].label]++
			rightCounts[samples[i].label]--

			if samples[i].value == samples[i+1].value {
				continue
			}

			nLeft, nRight := i+1, len(samples)-i-1
			weighted := (float64(nLeft)*gini(leftCounts, nLeft) + float64(nRight)*gini(rightCounts, nRight)) / float64(len(samples))
			if weighted < bestGini {
				bestGini = weighted
				bestFeature = f
				bestThreshold = (samples[i].value + samples[i+1].value) / 2
			}
		}
	}

	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}

func classCounts(y []int, indices []int, classes int) []float64 {
	counts := make([]float64, classes)
	for _, i := range indices {
		counts[y[i]]++
	}
	return counts
}

func gini(counts []float64, total int) float64 {
	if total == 0 {
		return 0
	}
	impurity := 1.0
	for _, c := range counts {
		p := c / float64(total)
		impurity -= p * p
	}
	return impurity
}
