package risk

import (
	"testing"

	"celiguard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestExplainHighMentionsRCDII(t *testing.T) {
	rec := moderateRecord()
	rec.RCDType = models.RCDII

	msg := Explain(rec, models.RiskHigh)
	assert.Contains(t, msg, "HIGH RISK")
	assert.Contains(t, msg, "Refractory Celiac Disease Type II")
}

func TestExplainHighPrefersRCDIIOverRCDI(t *testing.T) {
	rec := moderateRecord()
	rec.RCDType = models.RCDII
	msg := Explain(rec, models.RiskHigh)
	assert.NotContains(t, msg, "Type I,")

	rec.RCDType = models.RCDI
	msg = Explain(rec, models.RiskHigh)
	assert.Contains(t, msg, "Refractory Celiac Disease Type I")
}

func TestExplainHighListsFactors(t *testing.T) {
	rec := moderateRecord()
	rec.AgeAtDiagnosis = 55
	rec.MucosalHealing = models.No
	rec.GFDAdherence = models.AdherencePartial
	rec.YearsOfSymptoms = 9.5
	rec.MarshGrade = models.Marsh3c

	msg := Explain(rec, models.RiskHigh)
	assert.Contains(t, msg, "late diagnosis at age 55")
	assert.Contains(t, msg, "no mucosal healing on follow-up")
	assert.Contains(t, msg, "partial adherence to gluten-free diet")
	assert.Contains(t, msg, "long diagnostic delay (9.5 years)")
	assert.Contains(t, msg, "severe intestinal damage (Marsh 3c)")
}

func TestExplainHighGenericWhenNoFactorApplies(t *testing.T) {
	rec := moderateRecord()
	rec.MarshGrade = models.Marsh2

	msg := Explain(rec, models.RiskHigh)
	assert.Contains(t, msg, "Multiple risk factors present")
}

func TestExplainModerate(t *testing.T) {
	rec := moderateRecord()
	rec.AgeAtDiagnosis = 45
	rec.MucosalHealing = models.No

	msg := Explain(rec, models.RiskModerate)
	assert.Contains(t, msg, "MODERATE RISK")
	assert.Contains(t, msg, "diagnosis after age 40")
	assert.Contains(t, msg, "incomplete mucosal healing")
}

func TestExplainModerateGeneric(t *testing.T) {
	rec := moderateRecord()
	rec.AgeAtDiagnosis = 35
	rec.CurrentAge = 40
	rec.YearsOfSymptoms = 2

	msg := Explain(rec, models.RiskModerate)
	assert.Contains(t, msg, "Mixed risk profile")
}

func TestExplainLow(t *testing.T) {
	rec := moderateRecord()
	rec.AgeAtDiagnosis = 30
	rec.CurrentAge = 35
	rec.GFDAdherence = models.AdherenceExcellent

	msg := Explain(rec, models.RiskLow)
	assert.Contains(t, msg, "LOW RISK")
	assert.Contains(t, msg, "early diagnosis")
	assert.Contains(t, msg, "successful mucosal healing")
	assert.Contains(t, msg, "no refractory disease")
	assert.Contains(t, msg, "excellent diet adherence")
}
