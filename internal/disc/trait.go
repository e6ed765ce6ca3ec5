package disc

import "sort"

// RankTraits returns the insights sorted by descending score. Equal scores
// keep their input order, so ties resolve in D, I, S, C order.
func RankTraits(insights []Insight) []Insight {
	ranked := make([]Insight, len(insights))
	copy(ranked, insights)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// PrimarySecondary returns the two highest-ranked insights.
func PrimarySecondary(insights []Insight) (primary, secondary Insight) {
	ranked := RankTraits(insights)
	if len(ranked) > 0 {
		primary = ranked[0]
	}
	if len(ranked) > 1 {
		secondary = ranked[1]
	}
	return primary, secondary
}

// Result is a scored assessment.
type Result struct {
	Scores    Scores    `json:"scores" yaml:"scores"`
	Insights  []Insight `json:"insights" yaml:"insights"`
	Primary   Insight   `json:"primary" yaml:"primary"`
	Secondary Insight   `json:"secondary" yaml:"secondary"`
}

// Evaluate scores an answer set and derives its insights and top traits.
func Evaluate(answers AnswerSet) (Result, error) {
	scores, err := ComputeScores(answers)
	if err != nil {
		return Result{}, err
	}
	return ResultFromScores(scores), nil
}

// ResultFromScores derives insights and top traits from stored scores.
func ResultFromScores(scores Scores) Result {
	insights := ComputeInsights(scores)
	primary, secondary := PrimarySecondary(insights)
	return Result{
		Scores:    scores,
		Insights:  insights,
		Primary:   primary,
		Secondary: secondary,
	}
}
