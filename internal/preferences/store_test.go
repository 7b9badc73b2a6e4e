package preferences

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMissingFileUsesDefaults(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "preferences.json"))
	require.NoError(t, err)

	assert.Equal(t, Preferences{Theme: ThemeDark, Language: LanguageEnglish}, store.Get())
}

func TestSetPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	store, err := Open(path)
	require.NoError(t, err)

	_, err = store.SetTheme(ThemeLight)
	require.NoError(t, err)
	got, err := store.SetLanguage(LanguageRussian)
	require.NoError(t, err)
	assert.Equal(t, Preferences{Theme: ThemeLight, Language: LanguageRussian}, got)

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, Preferences{Theme: ThemeLight, Language: LanguageRussian}, reopened.Get())
}

func TestSetRejectsInvalidValues(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "preferences.json"))
	require.NoError(t, err)

	_, err = store.SetTheme("sepia")
	assert.ErrorIs(t, err, ErrInvalidTheme)

	_, err = store.SetLanguage("de")
	assert.ErrorIs(t, err, ErrInvalidLanguage)

	assert.Equal(t, Preferences{Theme: DefaultTheme, Language: DefaultLanguage}, store.Get())
}

func TestToggle(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "preferences.json"))
	require.NoError(t, err)

	got, err := store.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, got.Theme)
	got, err = store.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got.Theme)

	got, err = store.ToggleLanguage()
	require.NoError(t, err)
	assert.Equal(t, LanguageRussian, got.Language)
	got, err = store.ToggleLanguage()
	require.NoError(t, err)
	assert.Equal(t, LanguageEnglish, got.Language)
}

func TestUnknownStoredValuesReadAsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"neon","language":"fr"}`), 0o600))

	store, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, Preferences{Theme: DefaultTheme, Language: DefaultLanguage}, store.Get())
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestUpdateWritesBothFieldsTogether(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	store, err := Open(path)
	require.NoError(t, err)

	got, err := store.Update(Preferences{Theme: ThemeLight, Language: LanguageRussian})
	require.NoError(t, err)
	assert.Equal(t, Preferences{Theme: ThemeLight, Language: LanguageRussian}, got)

	got, err = store.Update(Preferences{Language: LanguageEnglish})
	require.NoError(t, err)
	assert.Equal(t, Preferences{Theme: ThemeLight, Language: LanguageEnglish}, got)

	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, got, reopened.Get())
}

func TestUpdateRejectsInvalidFieldWithoutWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	store, err := Open(path)
	require.NoError(t, err)

	_, err = store.Update(Preferences{Theme: ThemeLight, Language: "fr"})
	assert.ErrorIs(t, err, ErrInvalidLanguage)
	assert.Equal(t, Preferences{Theme: DefaultTheme, Language: DefaultLanguage}, store.Get())
	assert.NoFileExists(t, path)
}

func TestUpdateRestoresValuesWhenWriteFails(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "missing", "preferences.json"))
	require.NoError(t, err)

	_, err = store.Update(Preferences{Theme: ThemeLight, Language: LanguageRussian})
	require.Error(t, err)
	assert.Equal(t, Preferences{Theme: DefaultTheme, Language: DefaultLanguage}, store.Get())
}
