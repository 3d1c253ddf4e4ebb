// Package synth manufactures the synthetic patient cohort used for offline
// training. All sampling flows through one injected rng so a seed fully
// determines the cohort.
package synth

import (
	"math"
	"math/rand"

	"celiguard/internal/models"
)

type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Cohort samples n independent patient records from the fixed marginals.
func (g *Generator) Cohort(n int) []models.PatientRecord {
	records := make([]models.PatientRecord, n)
	for i := range records {
		records[i] = g.Patient()
	}
	return records
}

// Patient samples a single record. current_age and followup_years are
// derived, so the generated record always satisfies the domain invariants.
func (g *Generator) Patient() models.PatientRecord {
	ageAtDiagnosis := g.uniform(5, 80)
	currentAge := math.Min(ageAtDiagnosis+g.uniform(0, 10), 90)

	return models.PatientRecord{
		AgeAtDiagnosis:        ageAtDiagnosis,
		CurrentAge:            currentAge,
		YearsOfSymptoms:       g.uniform(0, 15),
		BMI:                   g.normalClipped(24, 4, 16, 35),
		FollowupYears:         math.Min(currentAge-ageAtDiagnosis, 20),
		Sex:                   pick(g.rng, models.SexValues, []float64{0.4, 0.6}),
		MarshGrade:            pick(g.rng, models.MarshGradeValues, []float64{0.05, 0.1, 0.15, 0.2, 0.25, 0.25}),
		MucosalHealing:        pick(g.rng, models.YesNoValues, []float64{0.65, 0.35}),
		RCDType:               pick(g.rng, models.RCDTypeValues, []float64{0.85, 0.10, 0.05}),
		SmokingStatus:         pick(g.rng, models.SmokingStatusValues, []float64{0.6, 0.25, 0.15}),
		GFDAdherence:          pick(g.rng, models.GFDAdherenceValues, []float64{0.15, 0.25, 0.35, 0.25}),
		FamilyHistoryOfCancer: pick(g.rng, models.YesNoValues, []float64{0.2, 0.8}),
		HLARisk:               pick(g.rng, models.HLARiskValues, []float64{0.3, 0.5, 0.2}),
	}
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Generator) normalClipped(mean, stddev, lo, hi float64) float64 {
	v := mean + g.rng.NormFloat64()*stddev
	return math.Min(math.Max(v, lo), hi)
}

// pick draws one value with the given weights. Weights must sum to 1; the
// last value absorbs any floating-point remainder.
func pick[T any](rng *rand.Rand, values []T, weights []float64) T {
	r := rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return values[i]
		}
	}
	return values[len(values)-1]
}
