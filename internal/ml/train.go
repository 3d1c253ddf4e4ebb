package ml

import (
	"fmt"
	"math/rand"

	"celiguard/internal/models"
)

type TrainConfig struct {
	TestFraction float64
	Softmax      SoftmaxConfig
	Forest       ForestConfig
}

func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		TestFraction: 0.2,
		Softmax:      DefaultSoftmaxConfig(),
		Forest:       DefaultForestConfig(),
	}
}

// TrainReport is the outcome of one training run: the selected model, its
// metadata, and the holdout scores of both candidates.
type TrainReport struct {
	Model            *Model
	Metadata         *Metadata
	LogisticAccuracy float64
	ForestAccuracy   float64
	Confusion        [][]int
	TrainSize        int
	TestSize         int
}

// Train fits a logistic regression and a random forest on a stratified
// 80/20 split and keeps the better one; the forest wins ties.
func Train(records []models.PatientRecord, labels []models.RiskClass, cfg TrainConfig, rng *rand.Rand) (*TrainReport, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("empty training cohort")
	}
	if len(records) != len(labels) {
		return nil, fmt.Errorf("cohort size %d does not match label count %d", len(records), len(labels))
	}

	encoder := FitEncoder(records)
	X := encoder.TransformAll(records)
	y := make([]int, len(labels))
	for i, label := range labels {
		y[i] = int(label)
	}

	trainIdx, testIdx := StratifiedSplit(y, models.NumRiskClasses, cfg.TestFraction, rng)
	if len(trainIdx) == 0 || len(testIdx) == 0 {
		return nil, fmt.Errorf("cohort too small for a %.0f%% holdout", cfg.TestFraction*100)
	}

	Xtrain, ytrain := subset(X, y, trainIdx)
	Xtest, ytest := subset(X, y, testIdx)

	softmax := TrainSoftmax(Xtrain, ytrain, models.NumRiskClasses, cfg.Softmax)
	softmaxPred := predictAll(softmax.Proba, Xtest)
	softmaxAcc := Accuracy(softmaxPred, ytest)

	forest := TrainForest(Xtrain, ytrain, models.NumRiskClasses, cfg.Forest, rng)
	forestPred := predictAll(forest.Proba, Xtest)
	forestAcc := Accuracy(forestPred, ytest)

	report := &TrainReport{
		LogisticAccuracy: softmaxAcc,
		ForestAccuracy:   forestAcc,
		TrainSize:        len(trainIdx),
		TestSize:         len(testIdx),
	}

	if forestAcc >= softmaxAcc {
		report.Model = &Model{Kind: KindRandomForest, Encoder: encoder, Forest: forest}
		report.Confusion = ConfusionMatrix(forestPred, ytest, models.NumRiskClasses)
	} else {
		report.Model = &Model{Kind: KindLogisticRegression, Encoder: encoder, Softmax: softmax}
		report.Confusion = ConfusionMatrix(softmaxPred, ytest, models.NumRiskClasses)
	}

	accuracy := softmaxAcc
	if forestAcc >= softmaxAcc {
		accuracy = forestAcc
	}
	report.Metadata = &Metadata{
		ModelType:           report.Model.Kind,
		Accuracy:            accuracy,
		NumericFeatures:     NumericFeatureNames,
		CategoricalFeatures: CategoricalFeatureNames,
	}
	return report, nil
}

func subset(X [][]float64, y []int, indices []int) ([][]float64, []int) {
	Xs := make([][]float64, len(indices))
	ys := make([]int, len(indices))
	for i, idx := range indices {
		Xs[i] = X[idx]
		ys[i] = y[idx]
	}
	return Xs, ys
}

func predictAll(proba func([]float64) []float64, X [][]float64) []int {
	pred := make([]int, len(X))
	for i, x := range X {
		probs := proba(x)
		best := 0
		for k, p := range probs {
			if p > probs[best] {
				best = k
			}
		}
		pred[i] = best
	}
	return pred
}
