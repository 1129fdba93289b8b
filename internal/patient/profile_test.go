package patient

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewRecordAssignsIntakeID(t *testing.T) {
	a, b := NewRecord(), NewRecord()
	if _, err := uuid.Parse(a.IntakeID); err != nil {
		t.Fatalf("IntakeID %q is not a UUID: %v", a.IntakeID, err)
	}
	if a.IntakeID == b.IntakeID {
		t.Errorf("two records share IntakeID %q", a.IntakeID)
	}
}

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Record)
		wantErr bool
	}{
		{name: "valid", modify: func(r *Record) {}},
		{name: "unknown labs", modify: func(r *Record) { r.A1C = LabUnknown; r.Glucose = LabUnknown }},
		{name: "free text lab", modify: func(r *Record) { r.A1C = "High" }, wantErr: true},
		{name: "lowercase medication", modify: func(r *Record) { r.DiabetesMed = "yes" }, wantErr: true},
		{name: "age over range", modify: func(r *Record) { r.Age = 151 }, wantErr: true},
		{name: "negative stay", modify: func(r *Record) { r.TimeInHospital = -1 }, wantErr: true},
		{name: "missing gender", modify: func(r *Record) { r.Gender = "" }, wantErr: true},
		{name: "missing intake id", modify: func(r *Record) { r.IntakeID = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := eligibleRecord()
			tt.modify(&r)
			err := r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckValue(t *testing.T) {
	tests := []struct {
		value   int
		rule    string
		wantErr bool
	}{
		{0, AgeRule, false},
		{150, AgeRule, false},
		{151, AgeRule, true},
		{-1, AgeRule, true},
		{0, CountRule, false},
		{-3, CountRule, true},
	}
	for _, tt := range tests {
		err := CheckValue(tt.value, tt.rule)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckValue(%d, %q) error = %v, wantErr %v", tt.value, tt.rule, err, tt.wantErr)
		}
	}
}

func TestRecommendedTests(t *testing.T) {
	r := eligibleRecord()
	r.A1C, r.Glucose = LabNormal, LabNormal
	if got := RecommendedTests(r); got != nil {
		t.Errorf("RecommendedTests with normal labs = %v, want nil", got)
	}

	r.Glucose = LabAbnormal
	got := RecommendedTests(r)
	if len(got) != 6 || got[0] != "Blood Test (CBC)" || got[5] != "Kidney Function Test" {
		t.Errorf("RecommendedTests = %v", got)
	}

	// Callers get their own copy.
	got[0] = "changed"
	if again := RecommendedTests(r); again[0] != "Blood Test (CBC)" {
		t.Errorf("RecommendedTests shares its backing slice")
	}
}
