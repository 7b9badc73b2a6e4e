package catalog

import (
	"testing"
	"time"

	"gamecatalog/backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRating(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"4.9", 4.9},
		{"4,5", 4.5},
		{" 3.25 ", 3.25},
		{"6.0", 5},
		{"100", 5},
		{"", 0},
		{"abc", 0},
		{".", 0},
		{"-2", 0},
		{"4.567", 4.57},
		{"1.005e0", 1},
		{"2.5stars", 2.5},
		{"3,5,1", 3.5},
		{"1e400", 5},
		{"Infinity", 5},
		{".75", 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRating(tt.in))
		})
	}
}

func TestParseRatingStaysInRange(t *testing.T) {
	for _, in := range []string{"-1e9", "5.0001", "4.999", "0.004", "NaN", "-Infinity"} {
		got := ParseRating(in)
		assert.GreaterOrEqual(t, got, 0.0, in)
		assert.LessOrEqual(t, got, MaxRating, in)
	}
}

func TestParseReleaseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2023", 2023},
		{" 1998", 1998},
		{"2001abc", 2001},
		{"", 2024},
		{"soon", 2024},
		{"0", 2024},
		{"-5", -5},
		{"99999999999999999999", 2024},
		{"9999999999", 2024},
		{"2147483647", 2147483647},
		{"-2147483649", 2024},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseReleaseYear(tt.in, 2024))
		})
	}
}

func TestNewPolicyFallbackYear(t *testing.T) {
	assert.Equal(t, 2024, NewPolicy(2024).FallbackYear)
	assert.Equal(t, time.Now().Year(), NewPolicy(0).FallbackYear)
}

func TestPolicyStudio(t *testing.T) {
	p := Policy{FallbackYear: 2024}

	_, err := p.Studio(StudioDraft{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)

	fields, err := p.Studio(StudioDraft{Name: "Nova", Description: "indie", Rating: "7"})
	require.NoError(t, err)
	assert.Equal(t, repository.StudioFields{Name: "Nova", Description: "indie", Rating: 5}, fields)
}

func TestPolicyGame(t *testing.T) {
	p := Policy{FallbackYear: 2024}

	_, err := p.Game(GameDraft{Title: "", StudioID: 1})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = p.Game(GameDraft{Title: "Orbit"})
	assert.ErrorIs(t, err, ErrStudioRequired)

	fields, err := p.Game(GameDraft{Title: "Orbit", Genre: "Puzzle", ReleaseYear: "", Rating: "4,333", StudioID: 7})
	require.NoError(t, err)
	assert.Equal(t, repository.GameFields{
		Title:       "Orbit",
		Genre:       "Puzzle",
		ReleaseYear: 2024,
		Rating:      4.33,
		StudioID:    7,
	}, fields)
}
