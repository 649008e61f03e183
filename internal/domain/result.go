package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Outcome is the coarse result of a match: home win, draw or away win.
type Outcome string

const (
	OutcomeHome Outcome = "HOME"
	OutcomeDraw Outcome = "DRAW"
	OutcomeAway Outcome = "AWAY"
)

var (
	ErrInvalidOutcome = errors.New("invalid outcome")
	ErrInvalidScore   = errors.New("invalid score")
)

// ParseOutcome validates an outcome symbol. It is the only place outcome
// strings are parsed; everything past the API boundary works with Outcome.
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(strings.ToUpper(s)) {
	case OutcomeHome:
		return OutcomeHome, nil
	case OutcomeDraw:
		return OutcomeDraw, nil
	case OutcomeAway:
		return OutcomeAway, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, s)
}

// Score is a full-time score pair of two non-negative integers.
type Score struct {
	Home int
	Away int
}

// ParseScore parses the "home-away" literal form, e.g. "2-1".
func ParseScore(s string) (Score, error) {
	home, away, ok := strings.Cut(s, "-")
	if !ok {
		return Score{}, fmt.Errorf("%w: %q", ErrInvalidScore, s)
	}
	h, err := strconv.Atoi(home)
	if err != nil || h < 0 || home != strconv.Itoa(h) {
		return Score{}, fmt.Errorf("%w: %q", ErrInvalidScore, s)
	}
	a, err := strconv.Atoi(away)
	if err != nil || a < 0 || away != strconv.Itoa(a) {
		return Score{}, fmt.Errorf("%w: %q", ErrInvalidScore, s)
	}
	return Score{Home: h, Away: a}, nil
}

func (s Score) String() string {
	return strconv.Itoa(s.Home) + "-" + strconv.Itoa(s.Away)
}

// Outcome derives the result category from the score comparison.
func (s Score) Outcome() Outcome {
	switch {
	case s.Home > s.Away:
		return OutcomeHome
	case s.Away > s.Home:
		return OutcomeAway
	default:
		return OutcomeDraw
	}
}
