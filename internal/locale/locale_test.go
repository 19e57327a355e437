package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MatchesLanguageCodes(t *testing.T) {
	cases := []struct {
		lang string
		want string
	}{
		{"en", "English"},
		{"en-US", "English"},
		{"it", "Italian"},
		{"it-CH", "Italian"},
		{"de", "English"}, // unsupported falls back
		{"", "English"},
		{"garbage!!", "English"},
	}
	for _, tc := range cases {
		table, err := New(tc.lang)
		require.NoError(t, err, "lang %q", tc.lang)
		assert.Equal(t, tc.want, table.LanguageName(), "lang %q", tc.lang)
	}
}

func TestGet_SubstitutesPlaceholders(t *testing.T) {
	table, err := New("en")
	require.NoError(t, err)

	got := table.Get("list_saved", Args{"title": "Shopping", "count": "3"})
	assert.Equal(t, "List 'Shopping' saved (3 items)", got)
}

func TestGet_MissingKeyReturnsKey(t *testing.T) {
	table, err := New("it")
	require.NoError(t, err)

	assert.Equal(t, "no_such_key", table.Get("no_such_key", nil))
}

func TestGet_ItalianTranslations(t *testing.T) {
	table, err := New("it")
	require.NoError(t, err)

	got := table.Get("note_saved", Args{"nid": "7"})
	assert.Contains(t, got, "7")
	assert.NotEqual(t, "note_saved", got)
	assert.NotContains(t, got, "{nid}")
}

func TestGet_SystemPromptEmbedsContext(t *testing.T) {
	table, err := New("en")
	require.NoError(t, err)

	got := table.Get("system_prompt", Args{
		"now":       "2026-08-23 10:00",
		"weekday":   "Sunday",
		"lang_name": "English",
	})
	assert.Contains(t, got, "2026-08-23 10:00")
	assert.Contains(t, got, "Sunday")
	assert.NotContains(t, got, "{now}")
	assert.NotContains(t, got, "{weekday}")
}

func TestKeys_InSyncAcrossTables(t *testing.T) {
	en, err := loadTable("en")
	require.NoError(t, err)
	it, err := loadTable("it")
	require.NoError(t, err)

	for key := range en {
		assert.Contains(t, it, key, "italian table missing %q", key)
	}
	for key := range it {
		assert.Contains(t, en, key, "english table missing %q", key)
	}
}
