package i18n

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/disc/internal/disc"
)

func TestCatalogs_Complete(t *testing.T) {
	for _, lang := range All() {
		for k := Key(0); k < keyCount; k++ {
			if strings.TrimSpace(T(lang, k)) == "" {
				t.Errorf("%s: key %d has no text", lang, k)
			}
		}
	}
}

func TestCatalogs_FormatVerbsMatch(t *testing.T) {
	for k := Key(0); k < keyCount; k++ {
		en := strings.Count(T(English, k), "%")
		es := strings.Count(T(Spanish, k), "%")
		if en != es {
			t.Errorf("key %d: english has %d verbs, spanish has %d", k, en, es)
		}
	}
}

func TestT_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, T(English, AppTitle), T(Lang("fr"), AppTitle))
	assert.Empty(t, T(English, keyCount))
	assert.Equal(t, "Salir", New(Spanish).T(MenuQuit))
}

func TestContent_CoversBank(t *testing.T) {
	for _, lang := range All() {
		for _, q := range disc.Questions() {
			assert.NotEmpty(t, QuestionText(lang, q.ID), "%s question %d", lang, q.ID)
		}
		for _, o := range disc.Options() {
			assert.NotEmpty(t, OptionLabel(lang, o.Value))
		}
		for _, d := range disc.AllDimensions() {
			assert.NotEmpty(t, DimensionName(lang, d))
			for _, score := range []int{0, 40, 70} {
				assert.NotEmpty(t, Describe(lang, d, score))
			}
		}
	}
	assert.Empty(t, QuestionText(English, 21))
	assert.Empty(t, OptionLabel(English, 0))
}

func TestEnglishMatchesBank(t *testing.T) {
	for _, q := range disc.Questions() {
		assert.Equal(t, q.Text, QuestionText(English, q.ID))
	}
	for _, o := range disc.Options() {
		assert.Equal(t, o.Label, OptionLabel(English, o.Value))
	}
	for _, d := range disc.AllDimensions() {
		assert.Equal(t, d.Name(), DimensionName(English, d))
	}
}

func TestLocalize(t *testing.T) {
	res := disc.ResultFromScores(disc.Scores{Dominance: 100, Influence: 50})
	es := Localize(Spanish, res)
	assert.Equal(t, "Fuerte preferencia por el liderazgo y la búsqueda de desafíos", es.Primary.Description)
	assert.Equal(t, es.Primary.Description, es.Insights[0].Description)
	// The input is untouched.
	assert.Equal(t, disc.DescribeScore(disc.Dominance, 100), res.Insights[0].Description)
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "March 5, 2024", FormatDate(English, d))
	assert.Equal(t, "5 de marzo de 2024", FormatDate(Spanish, d))
}

func TestParse(t *testing.T) {
	for in, want := range map[string]Lang{"en": English, "ES": Spanish, "es-MX": Spanish, "en-GB": English} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := Parse("fr")
	assert.Error(t, err)
	_, err = Parse("???")
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		prefs []string
		want  Lang
	}{
		{nil, English},
		{[]string{"C"}, English},
		{[]string{"es_ES.UTF-8"}, Spanish},
		{[]string{"", "es-AR"}, Spanish},
		{[]string{"en_US.UTF-8"}, English},
		{[]string{"de_DE"}, English},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Detect(tt.prefs...), "%v", tt.prefs)
	}
}
