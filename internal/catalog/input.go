// Package catalog turns raw form input into the values the repositories persist.
//
// Ratings are parsed leniently (comma or period as the decimal separator,
// trailing garbage ignored), coerced to 0 when not numeric, clamped into
// [0, MaxRating] and rounded to two decimals. Release years fall back to a
// configured year when they cannot be parsed.
package catalog

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"gamecatalog/backend/internal/repository"
)

const MaxRating = 5.0

var (
	ErrNameRequired   = errors.New("studio name is required")
	ErrTitleRequired  = errors.New("game title is required")
	ErrStudioRequired = errors.New("a studio must be selected")
)

// StudioDraft is a studio as typed into a form.
type StudioDraft struct {
	Name        string
	Description string
	Rating      string
}

// GameDraft is a game as typed into a form. StudioID is zero when no studio
// has been selected.
type GameDraft struct {
	Title       string
	Genre       string
	ReleaseYear string
	Rating      string
	StudioID    uint
}

// Policy holds the defaults applied while normalizing drafts.
type Policy struct {
	FallbackYear int
}

// NewPolicy uses configuredYear as the fallback release year, or the current
// year when configuredYear is zero.
func NewPolicy(configuredYear int) Policy {
	if configuredYear == 0 {
		configuredYear = time.Now().Year()
	}
	return Policy{FallbackYear: configuredYear}
}

func (p Policy) Studio(d StudioDraft) (repository.StudioFields, error) {
	if err := ValidateStudio(d.Name); err != nil {
		return repository.StudioFields{}, err
	}
	return repository.StudioFields{
		Name:        d.Name,
		Description: d.Description,
		Rating:      ParseRating(d.Rating),
	}, nil
}

func (p Policy) Game(d GameDraft) (repository.GameFields, error) {
	if err := ValidateGame(d.Title, d.StudioID); err != nil {
		return repository.GameFields{}, err
	}
	return repository.GameFields{
		Title:       d.Title,
		Genre:       d.Genre,
		ReleaseYear: ParseReleaseYear(d.ReleaseYear, p.FallbackYear),
		Rating:      ParseRating(d.Rating),
		StudioID:    d.StudioID,
	}, nil
}

func ValidateStudio(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return nil
}

func ValidateGame(title string, studioID uint) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if studioID == 0 {
		return ErrStudioRequired
	}
	return nil
}

// ParseRating converts user input into a stored rating.
func ParseRating(s string) float64 {
	v := parseFloatPrefix(strings.Replace(s, ",", ".", 1))
	if math.IsNaN(v) {
		v = 0
	}
	if v > MaxRating {
		v = MaxRating
	}
	if v < 0 {
		v = 0
	}
	return math.Round(v*100) / 100
}

// ParseReleaseYear reads the leading integer of s. Unparseable input, a
// zero year and a year outside the 32-bit column range all yield fallback.
func ParseReleaseYear(s string, fallback int) int {
	prefix := intPrefix(strings.TrimLeftFunc(s, unicode.IsSpace))
	if prefix == "" {
		return fallback
	}
	year, err := strconv.ParseInt(prefix, 10, 32)
	if err != nil || year == 0 {
		return fallback
	}
	return int(year)
}

func intPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return ""
	}
	return s[:i]
}

// parseFloatPrefix parses the longest decimal prefix of s, returning NaN
// when there is none.
func parseFloatPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	sign := 1.0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			sign = -1
		}
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return math.Inf(int(sign))
	}

	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN()
	}

	// An exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		// Out-of-range exponents still carry a usable magnitude.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}
