package models

type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

type MarshGrade string

const (
	Marsh0  MarshGrade = "0"
	Marsh1  MarshGrade = "1"
	Marsh2  MarshGrade = "2"
	Marsh3a MarshGrade = "3a"
	Marsh3b MarshGrade = "3b"
	Marsh3c MarshGrade = "3c"
)

type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

type RCDType string

const (
	RCDNone RCDType = "None"
	RCDI    RCDType = "RCD_I"
	RCDII   RCDType = "RCD_II"
)

type SmokingStatus string

const (
	SmokingNever   SmokingStatus = "Never"
	SmokingFormer  SmokingStatus = "Former"
	SmokingCurrent SmokingStatus = "Current"
)

type GFDAdherence string

const (
	AdherencePoor      GFDAdherence = "Poor"
	AdherencePartial   GFDAdherence = "Partial"
	AdherenceGood      GFDAdherence = "Good"
	AdherenceExcellent GFDAdherence = "Excellent"
)

type HLARisk string

const (
	HLALow    HLARisk = "Low"
	HLAMedium HLARisk = "Medium"
	HLAHigh   HLARisk = "High"
)

// Fixed value orderings. The one-hot feature layout depends on these, so the
// order must stay stable across training and serving.
var (
	SexValues           = []Sex{SexMale, SexFemale}
	MarshGradeValues    = []MarshGrade{Marsh0, Marsh1, Marsh2, Marsh3a, Marsh3b, Marsh3c}
	YesNoValues         = []YesNo{Yes, No}
	RCDTypeValues       = []RCDType{RCDNone, RCDI, RCDII}
	SmokingStatusValues = []SmokingStatus{SmokingNever, SmokingFormer, SmokingCurrent}
	GFDAdherenceValues  = []GFDAdherence{AdherencePoor, AdherencePartial, AdherenceGood, AdherenceExcellent}
	HLARiskValues       = []HLARisk{HLALow, HLAMedium, HLAHigh}
)

// PatientRecord is the unit of input for both training and prediction.
type PatientRecord struct {
	AgeAtDiagnosis        float64       `json:"age_at_diagnosis"`
	CurrentAge            float64       `json:"current_age"`
	YearsOfSymptoms       float64       `json:"years_of_symptoms_before_diagnosis"`
	BMI                   float64       `json:"bmi"`
	FollowupYears         float64       `json:"followup_years"`
	Sex                   Sex           `json:"sex"`
	MarshGrade            MarshGrade    `json:"marsh_grade_at_diagnosis"`
	MucosalHealing        YesNo         `json:"mucosal_healing_on_followup"`
	RCDType               RCDType       `json:"rcd_type"`
	SmokingStatus         SmokingStatus `json:"smoking_status"`
	GFDAdherence          GFDAdherence  `json:"gfd_adherence"`
	FamilyHistoryOfCancer YesNo         `json:"family_history_of_malignancy"`
	HLARisk               HLARisk       `json:"hla_risk"`
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// Validate checks every field against its declared domain. On failure it
// returns a *ValidationError naming each offending field; unknown enum values
// are rejected, never defaulted.
func (p PatientRecord) Validate() error {
	var fields []string

	if p.AgeAtDiagnosis < 5 || p.AgeAtDiagnosis > 80 {
		fields = append(fields, "age_at_diagnosis")
	}
	if p.CurrentAge < 5 || p.CurrentAge > 90 || p.CurrentAge < p.AgeAtDiagnosis {
		fields = append(fields, "current_age")
	}
	if p.YearsOfSymptoms < 0 || p.YearsOfSymptoms > 15 {
		fields = append(fields, "years_of_symptoms_before_diagnosis")
	}
	if p.BMI < 16 || p.BMI > 35 {
		fields = append(fields, "bmi")
	}
	if p.FollowupYears < 0 || p.FollowupYears > 20 {
		fields = append(fields, "followup_years")
	}
	if !contains(SexValues, p.Sex) {
		fields = append(fields, "sex")
	}
	if !contains(MarshGradeValues, p.MarshGrade) {
		fields = append(fields, "marsh_grade_at_diagnosis")
	}
	if !contains(YesNoValues, p.MucosalHealing) {
		fields = append(fields, "mucosal_healing_on_followup")
	}
	if !contains(RCDTypeValues, p.RCDType) {
		fields = append(fields, "rcd_type")
	}
	if !contains(SmokingStatusValues, p.SmokingStatus) {
		fields = append(fields, "smoking_status")
	}
	if !contains(GFDAdherenceValues, p.GFDAdherence) {
		fields = append(fields, "gfd_adherence")
	}
	if !contains(YesNoValues, p.FamilyHistoryOfCancer) {
		fields = append(fields, "family_history_of_malignancy")
	}
	if !contains(HLARiskValues, p.HLARisk) {
		fields = append(fields, "hla_risk")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
