// Package preferences persists the user's display preferences in a small JSON
// file, independently of the catalog database.
package preferences

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/spf13/viper"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageRussian Language = "ru"
)

const (
	DefaultTheme    = ThemeDark
	DefaultLanguage = LanguageEnglish
)

var (
	ErrInvalidTheme    = errors.New("theme must be light or dark")
	ErrInvalidLanguage = errors.New("language must be en or ru")
)

const (
	keyTheme    = "theme"
	keyLanguage = "language"
)

// Preferences is a snapshot of the stored values.
type Preferences struct {
	Theme    Theme    `json:"theme"`
	Language Language `json:"language"`
}

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageRussian
}

// Store reads and writes preferences. It is safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// Open loads preferences from path. A missing file yields the defaults and is
// created on the first write.
func Open(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault(keyTheme, string(DefaultTheme))
	v.SetDefault(keyLanguage, string(DefaultLanguage))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read preferences %s: %w", path, err)
		}
	}

	return &Store{v: v, path: path}, nil
}

// Get returns the current preferences. Unrecognized stored values read as
// the defaults.
func (s *Store) Get() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) SetTheme(theme Theme) (Preferences, error) {
	if !theme.Valid() {
		return Preferences{}, ErrInvalidTheme
	}
	return s.set(keyTheme, string(theme))
}

func (s *Store) SetLanguage(lang Language) (Preferences, error) {
	if !lang.Valid() {
		return Preferences{}, ErrInvalidLanguage
	}
	return s.set(keyLanguage, string(lang))
}

// Update applies the non-empty fields of changes in a single write. Either
// every field is persisted or none is.
func (s *Store) Update(changes Preferences) (Preferences, error) {
	values := map[string]string{}
	if changes.Theme != "" {
		if !changes.Theme.Valid() {
			return Preferences{}, ErrInvalidTheme
		}
		values[keyTheme] = string(changes.Theme)
	}
	if changes.Language != "" {
		if !changes.Language.Valid() {
			return Preferences{}, ErrInvalidLanguage
		}
		values[keyLanguage] = string(changes.Language)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(values) == 0 {
		return s.snapshot(), nil
	}
	return s.writeAll(values)
}

// ToggleTheme switches between light and dark.
func (s *Store) ToggleTheme() (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := ThemeDark
	if s.snapshot().Theme == ThemeDark {
		next = ThemeLight
	}
	return s.write(keyTheme, string(next))
}

// ToggleLanguage switches between English and Russian.
func (s *Store) ToggleLanguage() (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := LanguageRussian
	if s.snapshot().Language == LanguageRussian {
		next = LanguageEnglish
	}
	return s.write(keyLanguage, string(next))
}

func (s *Store) set(key, value string) (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(key, value)
}

func (s *Store) write(key, value string) (Preferences, error) {
	return s.writeAll(map[string]string{key: value})
}

// writeAll sets values and persists them, restoring the previous values if
// the file cannot be written.
func (s *Store) writeAll(values map[string]string) (Preferences, error) {
	previous := make(map[string]string, len(values))
	for key, value := range values {
		previous[key] = s.v.GetString(key)
		s.v.Set(key, value)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		for key, value := range previous {
			s.v.Set(key, value)
		}
		return Preferences{}, fmt.Errorf("write preferences %s: %w", s.path, err)
	}
	return s.snapshot(), nil
}

func (s *Store) snapshot() Preferences {
	p := Preferences{
		Theme:    Theme(s.v.GetString(keyTheme)),
		Language: Language(s.v.GetString(keyLanguage)),
	}
	if !p.Theme.Valid() {
		p.Theme = DefaultTheme
	}
	if !p.Language.Valid() {
		p.Language = DefaultLanguage
	}
	return p
}
