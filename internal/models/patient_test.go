package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() PatientRecord {
	return PatientRecord{
		AgeAtDiagnosis:        45,
		CurrentAge:            50,
		YearsOfSymptoms:       5,
		BMI:                   24.5,
		FollowupYears:         5,
		Sex:                   SexFemale,
		MarshGrade:            Marsh3b,
		MucosalHealing:        Yes,
		RCDType:               RCDNone,
		SmokingStatus:         SmokingNever,
		GFDAdherence:          AdherenceGood,
		FamilyHistoryOfCancer: No,
		HLARisk:               HLAMedium,
	}
}

func TestValidateAcceptsValidRecord(t *testing.T) {
	require.NoError(t, validRecord().Validate())
}

func TestValidateRejectsOutOfDomainFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PatientRecord)
		field  string
	}{
		{"age below range", func(p *PatientRecord) { p.AgeAtDiagnosis = 3 }, "age_at_diagnosis"},
		{"age above range", func(p *PatientRecord) { p.AgeAtDiagnosis = 81 }, "age_at_diagnosis"},
		{"current age above range", func(p *PatientRecord) { p.CurrentAge = 95 }, "current_age"},
		{"symptoms negative", func(p *PatientRecord) { p.YearsOfSymptoms = -1 }, "years_of_symptoms_before_diagnosis"},
		{"bmi too low", func(p *PatientRecord) { p.BMI = 12 }, "bmi"},
		{"followup above range", func(p *PatientRecord) { p.FollowupYears = 25 }, "followup_years"},
		{"unknown sex", func(p *PatientRecord) { p.Sex = "Unknown" }, "sex"},
		{"unknown marsh grade", func(p *PatientRecord) { p.MarshGrade = "4" }, "marsh_grade_at_diagnosis"},
		{"unknown healing value", func(p *PatientRecord) { p.MucosalHealing = "Maybe" }, "mucosal_healing_on_followup"},
		{"unknown rcd type", func(p *PatientRecord) { p.RCDType = "RCD_III" }, "rcd_type"},
		{"unknown smoking status", func(p *PatientRecord) { p.SmokingStatus = "Sometimes" }, "smoking_status"},
		{"unknown adherence", func(p *PatientRecord) { p.GFDAdherence = "Perfect" }, "gfd_adherence"},
		{"unknown family history", func(p *PatientRecord) { p.FamilyHistoryOfCancer = "" }, "family_history_of_malignancy"},
		{"unknown hla risk", func(p *PatientRecord) { p.HLARisk = "VeryHigh" }, "hla_risk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)

			err := rec.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestValidateRejectsCurrentAgeBeforeDiagnosis(t *testing.T) {
	rec := validRecord()
	rec.AgeAtDiagnosis = 50
	rec.CurrentAge = 45

	err := rec.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "current_age")
}

func TestValidateReportsAllOffendingFields(t *testing.T) {
	rec := validRecord()
	rec.BMI = 50
	rec.Sex = "Other"

	err := rec.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{"bmi", "sex"}, verr.Fields)
}

func TestRiskClassFromIndex(t *testing.T) {
	for idx, want := range []string{"Low", "Moderate", "High"} {
		class, err := RiskClassFromIndex(idx)
		require.NoError(t, err)
		assert.Equal(t, want, class.String())
	}

	_, err := RiskClassFromIndex(3)
	assert.Error(t, err)
	_, err = RiskClassFromIndex(-1)
	assert.Error(t, err)
}
