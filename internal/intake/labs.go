package intake

import (
	"diabetes-intake/internal/patient"
	"diabetes-intake/internal/utils"
	"fmt"
)

func (s *Session) collectLabReports(rec *patient.Record) error {
	var err error
	if rec.A1C, err = s.collectLab(rec.IntakeID, patient.HbA1c); err != nil {
		return err
	}
	rec.Glucose, err = s.collectLab(rec.IntakeID, patient.Glucose)
	return err
}

// collectLab asks whether a report exists. Without one the result is Unknown
// and the suggested tests are printed; nothing else is asked.
func (s *Session) collectLab(intakeID string, lab patient.Lab) (patient.LabResult, error) {
	hasReport, err := s.hasReport(fmt.Sprintf("\nDo you have %s? (Yes/No): ", lab.ReportName))
	if err != nil {
		return "", err
	}

	if !hasReport {
		fmt.Fprintf(s.out, "⚠ Please get %s test done.\n", lab.Name)
		fmt.Fprintln(s.out, "Suggested tests:")
		s.printList(lab.SuggestedTests)
		s.audit(utils.LogLabReportMissing(intakeID, lab.Name))
		return patient.LabUnknown, nil
	}

	result, err := s.askText(fmt.Sprintf("Enter %s result (Normal/Abnormal): ", lab.Name), patient.ReportedResults)
	return patient.LabResult(result), err
}

// hasReport treats only a literal "No" as a missing report, unless strict
// mode asks for a proper yes/no answer.
func (s *Session) hasReport(question string) (bool, error) {
	if s.opts.Strict {
		return s.in.PromptYesNo(question)
	}
	answer, err := s.in.Prompt(question)
	if err != nil {
		return false, err
	}
	return answer != "No", nil
}
