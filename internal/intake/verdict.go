package intake

import (
	"diabetes-intake/internal/patient"
	"diabetes-intake/internal/utils"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

func (s *Session) report(rec patient.Record, v patient.Verdict) {
	if v.Eliminated {
		fmt.Fprintf(s.out, "\n❌ Eliminated: %s\n", v.Reason)
	} else {
		fmt.Fprintln(s.out, "\n✅ Patient Eligible for Program")
	}

	if tests := patient.RecommendedTests(rec); len(tests) > 0 {
		fmt.Fprintln(s.out, "\nRecommended follow-up tests:")
		s.printList(tests)
	}

	s.audit(utils.LogVerdict(rec.IntakeID, v.Eligible(), v.Rule.String()))
	if err := s.ledger.Record(rec, v); err != nil {
		fmt.Fprintln(s.out, "Failed to record verdict:", err)
		s.audit(utils.LogError(rec.IntakeID, "LEDGER", err.Error()))
	}
}

// printSummary prints the tally for this run and returns the number of
// intakes evaluated. Nothing is printed before the first verdict.
func (s *Session) printSummary() int {
	stats, err := s.ledger.Summary()
	if err != nil {
		fmt.Fprintln(s.out, "Could not load session summary:", err)
		s.audit(utils.LogError("SYSTEM", "LEDGER", err.Error()))
		return 0
	}
	if stats.Total == 0 {
		return 0
	}

	fmt.Fprintln(s.out, "\n---- Session Summary ----")
	fmt.Fprintf(s.out, "Patients evaluated:   %d\n", stats.Total)
	fmt.Fprintf(s.out, "Eligible:             %d\n", stats.Eligible)
	fmt.Fprintf(s.out, "Pending lab reports:  %d\n", stats.PendingLabs)
	fmt.Fprintf(s.out, "Abnormal A1C:         %d\n", stats.AbnormalA1C)
	for _, rc := range stats.ByReason {
		fmt.Fprintf(s.out, "Eliminated (%s): %d\n", rc.Reason, rc.Count)
	}
	return stats.Total
}

func (s *Session) printList(items []string) {
	lines := lo.Map(items, func(item string, _ int) string {
		return "- " + item
	})
	fmt.Fprintln(s.out, strings.Join(lines, "\n"))
}
