package i18n

import (
	"fmt"
	"time"

	"github.com/abhisek/disc/internal/disc"
)

var spanishDescriptions = [disc.DimensionCount][3]string{
	disc.Dominance: {
		disc.TierLow:    "Preferencia por enfoques colaborativos y comportamiento prudente ante el riesgo",
		disc.TierMedium: "Preferencia moderada por la comunicación directa y el control",
		disc.TierHigh:   "Fuerte preferencia por el liderazgo y la búsqueda de desafíos",
	},
	disc.Influence: {
		disc.TierLow:    "Preferencia por conexiones profundas y significativas sobre interacciones casuales",
		disc.TierMedium: "Enfoque equilibrado entre la interacción social y la reflexión",
		disc.TierHigh:   "Estilo de comunicación muy sociable y persuasivo",
	},
	disc.Steadiness: {
		disc.TierLow:    "Cómodo con el cambio y flexible en su enfoque",
		disc.TierMedium: "Enfoque equilibrado entre la constancia y la adaptabilidad",
		disc.TierHigh:   "Fuerte preferencia por la estabilidad y los entornos predecibles",
	},
	disc.Compliance: {
		disc.TierLow:    "Preferencia por enfoques informales y decisiones espontáneas",
		disc.TierMedium: "Equilibrio entre seguir las reglas y la flexibilidad",
		disc.TierHigh:   "Fuerte enfoque en la precisión y los métodos sistemáticos",
	},
}

// QuestionText returns the localized statement for question id (1-based).
func QuestionText(lang Lang, id int) string {
	if id < 1 || id > len(englishQuestions) {
		return ""
	}
	if lang == Spanish {
		return spanishQuestions[id-1]
	}
	return englishQuestions[id-1]
}

// OptionLabel returns the localized Likert label for value 1-4.
func OptionLabel(lang Lang, value int) string {
	if !disc.ValidValue(value) {
		return ""
	}
	if lang == Spanish {
		return spanishOptions[value-disc.MinValue]
	}
	return englishOptions[value-disc.MinValue]
}

// DimensionName returns the localized dimension name.
func DimensionName(lang Lang, d disc.Dimension) string {
	if !d.Valid() {
		return ""
	}
	if lang == Spanish {
		return spanishDimensions[d]
	}
	return englishDimensions[d]
}

// Describe returns the localized description of d at score.
func Describe(lang Lang, d disc.Dimension, score int) string {
	if !d.Valid() {
		return ""
	}
	if lang == Spanish {
		return spanishDescriptions[d][disc.TierFor(score)]
	}
	return disc.DescribeScore(d, score)
}

// Localize rewrites the insight descriptions of r in lang.
func Localize(lang Lang, r disc.Result) disc.Result {
	out := r
	out.Insights = make([]disc.Insight, len(r.Insights))
	for i, in := range r.Insights {
		in.Description = Describe(lang, in.Dimension, in.Score)
		out.Insights[i] = in
	}
	out.Primary.Description = Describe(lang, r.Primary.Dimension, r.Primary.Score)
	out.Secondary.Description = Describe(lang, r.Secondary.Dimension, r.Secondary.Score)
	return out
}

// FormatDate renders t as "January 2, 2006" in English and
// "2 de enero de 2006" in Spanish.
func FormatDate(lang Lang, t time.Time) string {
	if lang == Spanish {
		return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
	}
	return fmt.Sprintf("%s %d, %d", englishMonths[t.Month()-1], t.Day(), t.Year())
}
