package risk

import (
	"fmt"
	"strings"

	"celiguard/internal/models"
)

// Explain produces the human-readable justification attached to a
// prediction. The thresholds here intentionally differ from AssignRisk
// (age 50 vs 40, RCD_II before RCD_I): this text narrates the model's
// output for a clinician, it does not recompute the label.
func Explain(rec models.PatientRecord, class models.RiskClass) string {
	switch class {
	case models.RiskHigh:
		return explainHigh(rec)
	case models.RiskModerate:
		return explainModerate(rec)
	default:
		return explainLow(rec)
	}
}

func explainHigh(rec models.PatientRecord) string {
	var reasons []string

	if rec.RCDType == models.RCDII {
		reasons = append(reasons, "Refractory Celiac Disease Type II (very high risk factor)")
	} else if rec.RCDType == models.RCDI {
		reasons = append(reasons, "Refractory Celiac Disease Type I")
	}
	if rec.AgeAtDiagnosis > 50 {
		reasons = append(reasons, fmt.Sprintf("late diagnosis at age %.0f", rec.AgeAtDiagnosis))
	}
	if rec.MucosalHealing == models.No {
		reasons = append(reasons, "no mucosal healing on follow-up")
	}
	if rec.GFDAdherence == models.AdherencePoor || rec.GFDAdherence == models.AdherencePartial {
		reasons = append(reasons, fmt.Sprintf("%s adherence to gluten-free diet", strings.ToLower(string(rec.GFDAdherence))))
	}
	if rec.YearsOfSymptoms > 8 {
		reasons = append(reasons, fmt.Sprintf("long diagnostic delay (%.1f years)", rec.YearsOfSymptoms))
	}
	if rec.MarshGrade == models.Marsh3b || rec.MarshGrade == models.Marsh3c {
		reasons = append(reasons, fmt.Sprintf("severe intestinal damage (Marsh %s)", rec.MarshGrade))
	}

	if len(reasons) > 0 {
		return fmt.Sprintf("HIGH RISK: Key factors include %s. Close monitoring and specialist follow-up recommended.", strings.Join(reasons, ", "))
	}
	return "HIGH RISK: Multiple risk factors present. Close monitoring and specialist follow-up recommended."
}

func explainModerate(rec models.PatientRecord) string {
	var factors []string

	if rec.AgeAtDiagnosis > 40 {
		factors = append(factors, "diagnosis after age 40")
	}
	if rec.MucosalHealing == models.No {
		factors = append(factors, "incomplete mucosal healing")
	}
	if rec.GFDAdherence == models.AdherencePartial {
		factors = append(factors, "partial diet adherence")
	}
	if rec.YearsOfSymptoms > 5 {
		factors = append(factors, "diagnostic delay")
	}

	if len(factors) > 0 {
		return fmt.Sprintf("MODERATE RISK: Some risk factors present including %s. Regular follow-up and monitoring advised.", strings.Join(factors, ", "))
	}
	return "MODERATE RISK: Mixed risk profile. Regular follow-up and monitoring advised."
}

func explainLow(rec models.PatientRecord) string {
	var protective []string

	if rec.AgeAtDiagnosis < 40 {
		protective = append(protective, "early diagnosis")
	}
	if rec.MucosalHealing == models.Yes {
		protective = append(protective, "successful mucosal healing")
	}
	if rec.RCDType == models.RCDNone {
		protective = append(protective, "no refractory disease")
	}
	if rec.GFDAdherence == models.AdherenceGood || rec.GFDAdherence == models.AdherenceExcellent {
		protective = append(protective, fmt.Sprintf("%s diet adherence", strings.ToLower(string(rec.GFDAdherence))))
	}

	if len(protective) > 0 {
		return fmt.Sprintf("LOW RISK: Favorable profile with %s. Continue current management and routine follow-up.", strings.Join(protective, ", "))
	}
	return "LOW RISK: Favorable risk profile. Continue current management and routine follow-up."
}
