package ml

import (
	"math"

	"celiguard/internal/models"
)

// Encoder turns a patient record into a flat feature vector: standardized
// numeric columns followed by one-hot categorical columns. The means and
// standard deviations are learned from the training cohort and serialized
// with the model.
type Encoder struct {
	NumericMeans []float64 `json:"numeric_means"`
	NumericStds  []float64 `json:"numeric_stds"`
}

// FitEncoder learns per-column mean and standard deviation from the cohort.
func FitEncoder(records []models.PatientRecord) *Encoder {
	n := len(records)
	cols := len(NumericFeatureNames)

	means := make([]float64, cols)
	for _, rec := range records {
		for i, v := range numericValues(rec) {
			means[i] += v
		}
	}
	for i := range means {
		means[i] /= float64(n)
	}

	stds := make([]float64, cols)
	for _, rec := range records {
		for i, v := range numericValues(rec) {
			d := v - means[i]
			stds[i] += d * d
		}
	}
	for i := range stds {
		stds[i] = math.Sqrt(stds[i] / float64(n))
		if stds[i] == 0 {
			stds[i] = 1
		}
	}

	return &Encoder{NumericMeans: means, NumericStds: stds}
}

// Dim is the length of the encoded feature vector.
func (e *Encoder) Dim() int {
	dim := len(NumericFeatureNames)
	for _, domain := range categoryDomains {
		dim += len(domain)
	}
	return dim
}

// Transform encodes one record. Unknown categorical values encode as all
// zeros for that column; validation upstream rejects them before they reach
// the model.
func (e *Encoder) Transform(rec models.PatientRecord) []float64 {
	x := make([]float64, 0, e.Dim())

	for i, v := range numericValues(rec) {
		x = append(x, (v-e.NumericMeans[i])/e.NumericStds[i])
	}

	for col, value := range categoricalValues(rec) {
		for _, candidate := range categoryDomains[col] {
			if value == candidate {
				x = append(x, 1)
			} else {
				x = append(x, 0)
			}
		}
	}
	return x
}

// TransformAll encodes a whole cohort.
func (e *Encoder) TransformAll(records []models.PatientRecord) [][]float64 {
	X := make([][]float64, len(records))
	for i, rec := range records {
		X[i] = e.Transform(rec)
	}
	return X
}
