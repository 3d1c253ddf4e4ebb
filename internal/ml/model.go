package ml

import (
	"fmt"

	"celiguard/internal/models"
)

// Classifier is the model collaborator contract the prediction endpoint
// depends on. Tests substitute a fake implementation.
type Classifier interface {
	Classify(rec models.PatientRecord) (int, error)
	ClassProbabilities(rec models.PatientRecord) ([]float64, error)
}

const (
	KindLogisticRegression = "Logistic Regression"
	KindRandomForest       = "Random Forest"
)

// Model is a trained classifier together with its feature encoder. Exactly
// one of Softmax or Forest is set, selected by Kind.
type Model struct {
	Kind    string             `json:"kind"`
	Encoder *Encoder           `json:"encoder"`
	Softmax *SoftmaxRegression `json:"softmax,omitempty"`
	Forest  *RandomForest      `json:"forest,omitempty"`
}

// ClassProbabilities returns one probability per class, ordered
// Low/Moderate/High.
func (m *Model) ClassProbabilities(rec models.PatientRecord) ([]float64, error) {
	if m.Encoder == nil {
		return nil, fmt.Errorf("model has no feature encoder")
	}
	x := m.Encoder.Transform(rec)

	switch m.Kind {
	case KindLogisticRegression:
		if m.Softmax == nil {
			return nil, fmt.Errorf("model kind %q has no softmax parameters", m.Kind)
		}
		return m.Softmax.Proba(x), nil
	case KindRandomForest:
		if m.Forest == nil {
			return nil, fmt.Errorf("model kind %q has no forest parameters", m.Kind)
		}
		return m.Forest.Proba(x), nil
	}
	return nil, fmt.Errorf("unknown model kind %q", m.Kind)
}

// Classify returns the index of the most probable class.
func (m *Model) Classify(rec models.PatientRecord) (int, error) {
	probs, err := m.ClassProbabilities(rec)
	if err != nil {
		return 0, err
	}
	best := 0
	for k, p := range probs {
		if p > probs[best] {
			best = k
		}
	}
	return best, nil
}
