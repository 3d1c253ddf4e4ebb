package ml

import (
	"math"
	"math/rand"
)

// RandomForest averages the class distributions of bootstrapped CART trees.
type RandomForest struct {
	Classes int         `json:"classes"`
	Trees   []*TreeNode `json:"trees"`
}

type ForestConfig struct {
	Trees          int
	MaxDepth       int
	MinSamplesLeaf int
}

func DefaultForestConfig() ForestConfig {
	return ForestConfig{Trees: 200, MaxDepth: 10, MinSamplesLeaf: 2}
}

// TrainForest fits cfg.Trees trees on bootstrap samples of X, each split
// considering sqrt(dim) random features. The rng makes training
// reproducible given a seed.
func TrainForest(X [][]float64, y []int, classes int, cfg ForestConfig, rng *rand.Rand) *RandomForest {
	n := len(X)
	dim := len(X[0])
	featuresPerSplit := int(math.Sqrt(float64(dim)))
	if featuresPerSplit < 1 {
		featuresPerSplit = 1
	}

	forest := &RandomForest{Classes: classes, Trees: make([]*TreeNode, cfg.Trees)}
	for t := range forest.Trees {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = rng.Intn(n)
		}

		builder := &treeBuilder{
			X:                X,
			y:                y,
			classes:          classes,
			maxDepth:         cfg.MaxDepth,
			minSamplesLeaf:   cfg.MinSamplesLeaf,
			featuresPerSplit: featuresPerSplit,
			rng:              rng,
		}
		forest.Trees[t] = builder.build(indices, 0)
	}
	return forest
}

// Proba averages the leaf distributions across all trees.
func (f *RandomForest) Proba(x []float64) []float64 {
	probs := make([]float64, f.Classes)
	for _, tree := range f.Trees {
		for k, p := range tree.predict(x) {
			probs[k] += p
		}
	}
	for k := range probs {
		probs[k] /= float64(len(f.Trees))
	}
	return probs
}
