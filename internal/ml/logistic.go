package ml

import "math"

// SoftmaxRegression is a multinomial logistic regression classifier.
// Weights is classes x (dim+1); the last column is the bias term.
type SoftmaxRegression struct {
	Weights [][]float64 `json:"weights"`
}

type SoftmaxConfig struct {
	LearningRate float64
	Epochs       int
	L2           float64
}

func DefaultSoftmaxConfig() SoftmaxConfig {
	return SoftmaxConfig{LearningRate: 0.5, Epochs: 300, L2: 1e-4}
}

// TrainSoftmax fits the model with full-batch gradient descent.
func TrainSoftmax(X [][]float64, y []int, classes int, cfg SoftmaxConfig) *SoftmaxRegression {
	n := len(X)
	dim := len(X[0])

	weights := make([][]float64, classes)
	for k := range weights {
		weights[k] = make([]float64, dim+1)
	}
	model := &SoftmaxRegression{Weights: weights}

	grads := make([][]float64, classes)
	for k := range grads {
		grads[k] = make([]float64, dim+1)
	}

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		for k := range grads {
			for d := range grads[k] {
				grads[k][d] = 0
			}
		}

		for i, x := range X {
			probs := model.Proba(x)
			for k := 0; k < classes; k++ {
				delta := probs[k]
				if y[i] == k {
					delta -= 1
				}
				for d, v := range x {
					grads[k][d] += delta * v
				}
				grads[k][dim] += delta
			}
		}

		scale := cfg.LearningRate / float64(n)
		for k := range weights {
			for d := range weights[k] {
				weights[k][d] -= scale*grads[k][d] + cfg.LearningRate*cfg.L2*weights[k][d]
			}
		}
	}
	return model
}

// Proba returns the class distribution for one encoded feature vector.
func (m *SoftmaxRegression) Proba(x []float64) []float64 {
	classes := len(m.Weights)
	dim := len(m.Weights[0]) - 1

	logits := make([]float64, classes)
	maxLogit := math.Inf(-1)
	for k, w := range m.Weights {
		z := w[dim]
		for d, v := range x {
			z += w[d] * v
		}
		logits[k] = z
		if z > maxLogit {
			maxLogit = z
		}
	}

	sum := 0.0
	for k, z := range logits {
		logits[k] = math.Exp(z - maxLogit)
		sum += logits[k]
	}
	for k := range logits {
		logits[k] /= sum
	}
	return logits
}
