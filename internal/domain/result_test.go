package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Outcome
		expectErr bool
	}{
		{name: "Home win", input: "HOME", expected: OutcomeHome},
		{name: "Draw", input: "DRAW", expected: OutcomeDraw},
		{name: "Away win", input: "AWAY", expected: OutcomeAway},
		{name: "Lowercase accepted", input: "home", expected: OutcomeHome},
		{name: "Mixed case accepted", input: "Draw", expected: OutcomeDraw},
		{name: "Unknown symbol", input: "WIN", expectErr: true},
		{name: "Empty string", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := ParseOutcome(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidOutcome)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, outcome)
			}
		})
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Score
		expectErr bool
	}{
		{name: "Regular score", input: "2-1", expected: Score{Home: 2, Away: 1}},
		{name: "Goalless draw", input: "0-0", expected: Score{Home: 0, Away: 0}},
		{name: "Double digits", input: "10-0", expected: Score{Home: 10, Away: 0}},
		{name: "Missing separator", input: "21", expectErr: true},
		{name: "Negative goals", input: "-1-2", expectErr: true},
		{name: "Non-numeric", input: "a-b", expectErr: true},
		{name: "Leading zero rejected", input: "02-1", expectErr: true},
		{name: "Empty string", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := ParseScore(tt.input)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidScore)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, score)
			}
		})
	}
}

func TestScoreRoundTrip(t *testing.T) {
	score, err := ParseScore("3-2")
	assert.NoError(t, err)
	assert.Equal(t, "3-2", score.String())
}

func TestScoreOutcome(t *testing.T) {
	assert.Equal(t, OutcomeHome, Score{Home: 2, Away: 1}.Outcome())
	assert.Equal(t, OutcomeAway, Score{Home: 0, Away: 3}.Outcome())
	assert.Equal(t, OutcomeDraw, Score{Home: 1, Away: 1}.Outcome())
}

func TestMatchResult(t *testing.T) {
	home, away := 2, 0

	finished := Match{ID: 1, Status: "FINISHED", HomeScore: &home, AwayScore: &away}
	outcome, score, ok := finished.Result()
	assert.True(t, ok)
	assert.Equal(t, OutcomeHome, outcome)
	assert.Equal(t, Score{Home: 2, Away: 0}, score)

	scheduled := Match{ID: 2, Status: "SCHEDULED"}
	_, _, ok = scheduled.Result()
	assert.False(t, ok)

	partial := Match{ID: 3, Status: "IN_PLAY", HomeScore: &home}
	assert.False(t, partial.Finished())
}
