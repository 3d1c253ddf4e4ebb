package models

import "fmt"

// RiskClass is the ordinal malignancy risk level. The numeric values are the
// class indices the trained model emits, so the mapping is fixed.
type RiskClass int

const (
	RiskLow RiskClass = iota
	RiskModerate
	RiskHigh
)

// NumRiskClasses is the size of the model's output distribution.
const NumRiskClasses = 3

func (r RiskClass) String() string {
	switch r {
	case RiskLow:
		return "Low"
	case RiskModerate:
		return "Moderate"
	case RiskHigh:
		return "High"
	}
	return fmt.Sprintf("RiskClass(%d)", int(r))
}

// RiskClassFromIndex maps a model class index to its label. Indices outside
// 0..2 are a model contract violation, not a default.
func RiskClassFromIndex(i int) (RiskClass, error) {
	if i < 0 || i >= NumRiskClasses {
		return 0, fmt.Errorf("class index %d out of range", i)
	}
	return RiskClass(i), nil
}

// PredictionResult is the /predict response body. RiskScore holds one
// probability per class, ordered Low/Moderate/High.
type PredictionResult struct {
	RiskClass string    `json:"risk_class"`
	RiskScore []float64 `json:"risk_score"`
	Message   string    `json:"message"`
}
