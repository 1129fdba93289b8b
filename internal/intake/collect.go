package intake

import (
	"diabetes-intake/internal/patient"
	"strings"
)

// collectPatientData fills rec in prompt order. Outside strict mode text
// answers are stored exactly as typed.
func (s *Session) collectPatientData(rec *patient.Record) error {
	var err error

	if rec.Gender, err = s.askText("\nGender (Male/Female): ", patient.Genders); err != nil {
		return err
	}
	if rec.Age, err = s.in.PromptInt("Age: ", s.rangeCheck(patient.AgeRule)); err != nil {
		return err
	}
	if rec.TimeInHospital, err = s.in.PromptInt("Days in hospital: ", s.rangeCheck(patient.CountRule)); err != nil {
		return err
	}
	if rec.EmergencyVisits, err = s.in.PromptInt("Emergency visits: ", s.rangeCheck(patient.CountRule)); err != nil {
		return err
	}
	if rec.InpatientVisits, err = s.in.PromptInt("Inpatient visits: ", s.rangeCheck(patient.CountRule)); err != nil {
		return err
	}

	if err := s.collectLabReports(rec); err != nil {
		return err
	}

	rec.DiabetesMed, err = s.askText("\nOn diabetes medication? (Yes/No): ", patient.MedicationAnswers)
	return err
}

// askText reads a free-text answer, or one of choices in strict mode.
func (s *Session) askText(promptText string, choices []string) (string, error) {
	if s.opts.Strict {
		return s.in.PromptChoice(promptText, choices)
	}
	return s.in.Prompt(promptText)
}

func (s *Session) rangeCheck(rule string) func(int) error {
	if !s.opts.Strict {
		return nil
	}
	return func(n int) error {
		return patient.CheckValue(n, rule)
	}
}

// fieldName turns "\nDays in hospital: " into "Days in hospital".
func fieldName(promptText string) string {
	return strings.TrimSuffix(strings.TrimSpace(promptText), ":")
}
