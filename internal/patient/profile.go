package patient

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	MedicationYes = "Yes"
	MedicationNo  = "No"
)

var Genders = []string{"Male", "Female", "Other"}

// Field rules applied by strict mode at the input boundary.
const (
	AgeRule   = "gte=0,lte=150"
	CountRule = "gte=0"
)

var validate = validator.New()

// Record is a single patient intake. It lives for one menu iteration and is
// dropped once the verdict has been printed.
type Record struct {
	IntakeID        string    `validate:"required,uuid4"`
	Gender          string    `validate:"required,oneof=Male Female Other"`
	Age             int       `validate:"gte=0,lte=150"`
	TimeInHospital  int       `validate:"gte=0"`
	EmergencyVisits int       `validate:"gte=0"`
	InpatientVisits int       `validate:"gte=0"`
	A1C             LabResult `validate:"oneof=Normal Abnormal Unknown"`
	Glucose         LabResult `validate:"oneof=Normal Abnormal Unknown"`
	DiabetesMed     string    `validate:"oneof=Yes No"`
}

func NewRecord() Record {
	return Record{IntakeID: uuid.NewString()}
}

// Validate checks the record against the closed value sets used by strict
// mode. Default intake never calls it.
func (r Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid patient record: %w", err)
	}
	return nil
}

// CheckValue validates a single input value against a validator rule such as
// AgeRule or CountRule.
func CheckValue(v any, rule string) error {
	return validate.Var(v, rule)
}
