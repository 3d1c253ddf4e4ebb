// Package risk holds the clinical heuristics of the stratifier: the rule
// table that labels the synthetic training cohort and the narrative
// explanations attached to model predictions. The two use overlapping but
// deliberately different thresholds; the explanation is narrative over the
// model output, not a re-derivation of the label.
package risk

import (
	"math/rand"

	"celiguard/internal/models"
)

// Engine assigns malignancy risk labels to patient records. The fallback
// branch draws from the injected rng, so labeling is reproducible given a
// seed.
type Engine struct {
	rng *rand.Rand
}

func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// AssignRisk labels a record. Rules are evaluated in order and the first
// match wins; the order is the tie-break policy, do not reorder.
func (e *Engine) AssignRisk(rec models.PatientRecord) models.RiskClass {
	// High risk conditions
	if rec.RCDType == models.RCDII {
		return models.RiskHigh
	}

	if rec.AgeAtDiagnosis > 50 &&
		rec.MucosalHealing == models.No &&
		(rec.GFDAdherence == models.AdherencePoor || rec.GFDAdherence == models.AdherencePartial) {
		return models.RiskHigh
	}

	if rec.YearsOfSymptoms > 8 &&
		(rec.MarshGrade == models.Marsh3b || rec.MarshGrade == models.Marsh3c) &&
		rec.GFDAdherence == models.AdherencePoor {
		return models.RiskHigh
	}

	if rec.AgeAtDiagnosis > 60 &&
		rec.RCDType == models.RCDI &&
		rec.MucosalHealing == models.No {
		return models.RiskHigh
	}

	// Low risk conditions
	if rec.AgeAtDiagnosis < 40 &&
		rec.MucosalHealing == models.Yes &&
		rec.RCDType == models.RCDNone &&
		(rec.GFDAdherence == models.AdherenceGood || rec.GFDAdherence == models.AdherenceExcellent) {
		return models.RiskLow
	}

	if rec.MucosalHealing == models.Yes &&
		rec.RCDType == models.RCDNone &&
		rec.GFDAdherence == models.AdherenceExcellent &&
		rec.YearsOfSymptoms < 3 {
		return models.RiskLow
	}

	// Everything else is moderate, with a 15% chance to shift between
	// moderate and its neighbors to avoid hard label boundaries.
	if e.rng.Float64() < 0.15 {
		return e.shiftedDraw()
	}
	return models.RiskModerate
}

// shiftedDraw picks a class with weights Low 0.3 / Moderate 0.4 / High 0.3.
func (e *Engine) shiftedDraw() models.RiskClass {
	r := e.rng.Float64()
	switch {
	case r < 0.3:
		return models.RiskLow
	case r < 0.7:
		return models.RiskModerate
	default:
		return models.RiskHigh
	}
}
