package disc

const (
	// QuestionCount is the number of statements in the questionnaire.
	QuestionCount = 20

	// QuestionsPerDimension is the number of statements tagged with each dimension.
	QuestionsPerDimension = 5

	// Unanswered marks an answer the user has not given yet.
	Unanswered = 0

	// MinValue and MaxValue bound a Likert answer.
	MinValue = 1
	MaxValue = 4
)

// Question is a single statement of the questionnaire.
type Question struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Dimension Dimension `json:"type"`
}

// Option is one of the four Likert choices shared by every question.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

var questionBank = []Question{
	{ID: 1, Dimension: Dominance, Text: "I am assertive, demanding, and decisive."},
	{ID: 2, Dimension: Dominance, Text: "I enjoy doing multiple tasks at once."},
	{ID: 3, Dimension: Dominance, Text: "I thrive in a challenge-based environment."},
	{ID: 4, Dimension: Dominance, Text: "I think about tasks more than others or myself."},
	{ID: 5, Dimension: Dominance, Text: "I am motivated by accomplishment and authority."},

	{ID: 6, Dimension: Influence, Text: "I enjoy influencing others to achieve goals."},
	{ID: 7, Dimension: Influence, Text: "I am optimistic about others."},
	{ID: 8, Dimension: Influence, Text: "I prefer to collaborate rather than work alone."},
	{ID: 9, Dimension: Influence, Text: "I use gestures and animated expressions when I communicate."},
	{ID: 10, Dimension: Influence, Text: "I am interested in developing personal connections."},

	{ID: 11, Dimension: Steadiness, Text: "I appreciate predictable situations and environments."},
	{ID: 12, Dimension: Steadiness, Text: "I listen more than I speak."},
	{ID: 13, Dimension: Steadiness, Text: "I am patient and supportive of others."},
	{ID: 14, Dimension: Steadiness, Text: "I prefer to focus on one task until completion."},
	{ID: 15, Dimension: Steadiness, Text: "I strive for stability and harmony in groups."},

	{ID: 16, Dimension: Compliance, Text: "I prefer clear rules and instructions to follow."},
	{ID: 17, Dimension: Compliance, Text: "I pay careful attention to details and precision."},
	{ID: 18, Dimension: Compliance, Text: "I make decisions based on facts and evidence."},
	{ID: 19, Dimension: Compliance, Text: "I prefer to work with existing processes rather than creating new ones."},
	{ID: 20, Dimension: Compliance, Text: "I analyze situations before making decisions."},
}

var options = []Option{
	{Value: 1, Label: "Strongly Disagree"},
	{Value: 2, Label: "Disagree"},
	{Value: 3, Label: "Agree"},
	{Value: 4, Label: "Strongly Agree"},
}

// Questions returns a copy of the question bank in questionnaire order.
func Questions() []Question {
	out := make([]Question, len(questionBank))
	copy(out, questionBank)
	return out
}

// QuestionAt returns the question at the zero-based position i.
func QuestionAt(i int) (Question, bool) {
	if i < 0 || i >= len(questionBank) {
		return Question{}, false
	}
	return questionBank[i], true
}

// Options returns a copy of the Likert options, lowest value first.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// ValidValue reports whether v is a Likert value (the unanswered sentinel excluded).
func ValidValue(v int) bool {
	return v >= MinValue && v <= MaxValue
}
