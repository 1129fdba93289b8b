package utils

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Reader reads whitespace-delimited answers, one token per prompt.
type Reader struct {
	scanner  *bufio.Scanner
	out      io.Writer
	onReject func(promptText string)
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Reader{scanner: scanner, out: out}
}

// OnReject registers fn to be called whenever an answer is refused and the
// prompt is repeated.
func (r *Reader) OnReject(fn func(promptText string)) {
	r.onReject = fn
}

func (r *Reader) reject(promptText string, msg string) {
	fmt.Fprintln(r.out, msg)
	if r.onReject != nil {
		r.onReject(promptText)
	}
}

// Prompt prints promptText and returns the next token. It returns io.EOF once
// input is exhausted.
func (r *Reader) Prompt(promptText string) (string, error) {
	fmt.Fprint(r.out, promptText)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

// PromptInt asks until the answer parses as an integer and passes check.
// check may be nil.
func (r *Reader) PromptInt(promptText string, check func(int) error) (int, error) {
	for {
		text, err := r.Prompt(promptText)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			r.reject(promptText, "Please enter a whole number.")
			continue
		}
		if check != nil {
			if err := check(n); err != nil {
				r.reject(promptText, "Value out of range, please try again.")
				continue
			}
		}
		return n, nil
	}
}

// PromptChoice asks until the answer matches one of choices ignoring case and
// returns the matching choice.
func (r *Reader) PromptChoice(promptText string, choices []string) (string, error) {
	for {
		text, err := r.Prompt(promptText)
		if err != nil {
			return "", err
		}
		choice, ok := lo.Find(choices, func(c string) bool {
			return strings.EqualFold(c, text)
		})
		if ok {
			return choice, nil
		}
		r.reject(promptText, fmt.Sprintf("Please enter one of: %s.", strings.Join(choices, ", ")))
	}
}

func (r *Reader) PromptYesNo(promptText string) (bool, error) {
	for {
		text, err := r.Prompt(promptText)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(text) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			r.reject(promptText, "Please enter 'y' or 'n'.")
		}
	}
}
