package localization_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nammareport/backend/internal/localization"
)

func writeLocales(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	en := `{"app_name": "Namma Report", "status.open": "Open", "only_en": "English only"}`
	kn := `{"app_name": "ನಮ್ಮ ರಿಪೋರ್ಟ್", "status.open": "ತೆರೆದಿದೆ"}`

	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(en), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kn.json"), []byte(kn), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))
	return dir
}

// TestLocalizer_GetString verifies direct lookup, English fallback, and the
// key-as-fallback behavior.
func TestLocalizer_GetString(t *testing.T) {
	l, err := localization.NewLocalizer(writeLocales(t))
	require.NoError(t, err)

	assert.Equal(t, "Open", l.GetString("en", "status.open"))
	assert.Equal(t, "ತೆರೆದಿದೆ", l.GetString("kn", "status.open"))

	// Key missing from kn falls back to en.
	assert.Equal(t, "English only", l.GetString("kn", "only_en"))

	// Unknown key falls back to the key itself.
	assert.Equal(t, "no_such_key", l.GetString("kn", "no_such_key"))

	// Unknown language falls back to en.
	assert.Equal(t, "Open", l.GetString("fr", "status.open"))
}

// TestLocalizer_Table verifies the merged table for a language.
func TestLocalizer_Table(t *testing.T) {
	l, err := localization.NewLocalizer(writeLocales(t))
	require.NoError(t, err)

	kn := l.Table("kn")
	assert.Equal(t, "ತೆರೆದಿದೆ", kn["status.open"])
	assert.Equal(t, "English only", kn["only_en"], "gaps are filled from en")

	assert.Equal(t, l.Table("en"), l.Table("unknown"))
}

// TestLocalizer_Languages verifies non-JSON files are skipped.
func TestLocalizer_Languages(t *testing.T) {
	l, err := localization.NewLocalizer(writeLocales(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "kn"}, l.Languages())
}

// TestNewLocalizer_Errors verifies bad input surfaces an error.
func TestNewLocalizer_Errors(t *testing.T) {
	_, err := localization.NewLocalizer(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte("{broken"), 0o644))
	_, err = localization.NewLocalizer(dir)
	assert.Error(t, err)
}
