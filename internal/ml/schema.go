// Package ml implements the model collaborator: feature encoding, the two
// candidate classifiers (multinomial logistic regression and random forest),
// the offline training pipeline, and the JSON artifact pair the serving
// process loads.
package ml

import "celiguard/internal/models"

// Feature column names, reported in the model metadata. The order below is
// the feature-vector layout and must not change between training and serving.
var (
	NumericFeatureNames = []string{
		"age_at_diagnosis",
		"current_age",
		"years_of_symptoms_before_diagnosis",
		"bmi",
		"followup_years",
	}

	CategoricalFeatureNames = []string{
		"sex",
		"marsh_grade_at_diagnosis",
		"mucosal_healing_on_followup",
		"rcd_type",
		"smoking_status",
		"gfd_adherence",
		"family_history_of_malignancy",
		"hla_risk",
	}
)

// categoryDomains holds the one-hot value ordering per categorical column,
// aligned with CategoricalFeatureNames.
var categoryDomains = [][]string{
	toStrings(models.SexValues),
	toStrings(models.MarshGradeValues),
	toStrings(models.YesNoValues),
	toStrings(models.RCDTypeValues),
	toStrings(models.SmokingStatusValues),
	toStrings(models.GFDAdherenceValues),
	toStrings(models.YesNoValues),
	toStrings(models.HLARiskValues),
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func numericValues(rec models.PatientRecord) []float64 {
	return []float64{
		rec.AgeAtDiagnosis,
		rec.CurrentAge,
		rec.YearsOfSymptoms,
		rec.BMI,
		rec.FollowupYears,
	}
}

func categoricalValues(rec models.PatientRecord) []string {
	return []string{
		string(rec.Sex),
		string(rec.MarshGrade),
		string(rec.MucosalHealing),
		string(rec.RCDType),
		string(rec.SmokingStatus),
		string(rec.GFDAdherence),
		string(rec.FamilyHistoryOfCancer),
		string(rec.HLARisk),
	}
}
