package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tastybites/counter/internal/enum"
)

// Errors returned while reading operator input.
var (
	ErrNotANumber       = errors.New("not a valid number")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrNoQuantityOnLine = errors.New("no quantity on line")
	ErrLineTooLong      = errors.New("input line too long")
)

// Selection is the result of parsing one line typed at the selection prompt.
type Selection struct {
	// Checkout is set only when the whole trimmed line is the terminator.
	Checkout bool
	Choices  []Choice
}

// Choice is a single whitespace-separated token of a selection line.
// Number is meaningful only when Err is nil.
type Choice struct {
	Raw    string
	Number int
	Err    error
}

// ParseSelection splits a selection line into choices, in the order typed.
// A token that is not an integer yields a Choice with ErrNotANumber; it does
// not stop the remaining tokens from being parsed.
func ParseSelection(line string) Selection {
	line = strings.TrimSpace(line)
	if line == enum.TerminatorToken {
		return Selection{Checkout: true}
	}

	fields := strings.Fields(line)
	sel := Selection{Choices: make([]Choice, 0, len(fields))}
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			sel.Choices = append(sel.Choices, Choice{Raw: f, Err: ErrNotANumber})
			continue
		}
		sel.Choices = append(sel.Choices, Choice{Raw: f, Number: n})
	}
	return sel
}

// ParseQuantity reads the first field of a quantity line. Anything after it
// is ignored. The quantity must be a positive integer.
func ParseQuantity(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, ErrNoQuantityOnLine
	}
	qty, err := strconv.Atoi(fields[0])
	if err != nil || qty <= 0 {
		return 0, ErrInvalidQuantity
	}
	return qty, nil
}
