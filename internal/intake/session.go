// Package intake runs the interactive intake form: the menu loop, patient
// data collection, lab report questions and the eligibility verdict.
package intake

import (
	"diabetes-intake/internal/ledger"
	"diabetes-intake/internal/patient"
	"diabetes-intake/internal/utils"
	"errors"
	"fmt"
	"io"
	"strconv"
)

type Options struct {
	// Strict validates enumerated answers and numeric ranges at input time.
	Strict bool
	// ClearScreen clears the terminal before the banner. Only useful on a tty.
	ClearScreen bool
}

type Session struct {
	in     *utils.Reader
	out    io.Writer
	ledger *ledger.Ledger
	opts   Options
}

func NewSession(in io.Reader, out io.Writer, l *ledger.Ledger, opts Options) *Session {
	return &Session{
		in:     utils.NewReader(in, out),
		out:    out,
		ledger: l,
		opts:   opts,
	}
}

// Run shows the menu until the user exits or input ends. Both return nil.
func (s *Session) Run() error {
	s.audit(utils.LogSessionStart(s.opts.Strict))

	if s.opts.ClearScreen {
		fmt.Fprint(s.out, "\033[H\033[2J")
	}
	fmt.Fprintln(s.out, "🏥 Diabetes Intake CLI")

	for {
		fmt.Fprintln(s.out, "\n---- MENU ----")
		fmt.Fprintln(s.out, "1. Enter Patient Data")
		fmt.Fprintln(s.out, "2. Exit")

		choice, err := s.in.Prompt("Choice: ")
		if errors.Is(err, io.EOF) {
			return s.exit()
		}
		if err != nil {
			return err
		}

		// Anything that is not 1 or 2 just shows the menu again.
		n, _ := strconv.Atoi(choice)
		switch n {
		case 1:
			if err := s.runIntake(); err != nil {
				if errors.Is(err, io.EOF) {
					return s.exit()
				}
				return err
			}
		case 2:
			return s.exit()
		}
	}
}

func (s *Session) runIntake() error {
	rec := patient.NewRecord()
	s.audit(utils.LogIntakeStarted(rec.IntakeID))
	s.in.OnReject(func(promptText string) {
		s.audit(utils.LogInputRejected(rec.IntakeID, fieldName(promptText)))
	})
	defer s.in.OnReject(nil)

	if err := s.collectPatientData(&rec); err != nil {
		return err
	}

	if s.opts.Strict {
		if err := rec.Validate(); err != nil {
			fmt.Fprintln(s.out, "\nIntake rejected:", err)
			s.audit(utils.LogRecordRejected(rec.IntakeID, err.Error()))
			return nil
		}
	}

	fmt.Fprintln(s.out, "\nProcessing...")
	s.report(rec, patient.Evaluate(rec))
	return nil
}

func (s *Session) exit() error {
	total := s.printSummary()
	fmt.Fprintln(s.out, "\nGoodbye!")
	s.audit(utils.LogSessionEnd(total))
	return nil
}

func (s *Session) audit(err error) {
	if err != nil {
		fmt.Fprintln(s.out, "Failed to write audit log:", err)
	}
}
