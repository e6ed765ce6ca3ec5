package i18n

var english = catalog{
	AppTitle:   "DISC Personality Assessment",
	AppTagline: "Discover your behavioral style",
	AppFooter:  "A self-assessment tool. Results should be considered in context.",

	MenuStart:    "Take the assessment",
	MenuResume:   "Resume assessment",
	MenuHistory:  "Results history",
	MenuAccount:  "Account",
	MenuLanguage: "Language",
	MenuQuit:     "Quit",

	IntroBadge:           "Personality Assessment",
	IntroTitle:           "Discover Your DISC Personality Profile",
	IntroBody:            "The DISC assessment helps you understand your behavioral style and how you relate to others. Complete this short questionnaire to receive your personalized profile.",
	IntroDiscover:        "What You'll Discover",
	IntroDominance:       "How you approach problems and challenges",
	IntroInfluence:       "How you interact with and persuade others",
	IntroSteadiness:      "Your pace and consistency in activities",
	IntroCompliance:      "How you respond to rules and procedures",
	IntroReady:           "Ready to Begin?",
	IntroNamePrompt:      "Enter your name to receive a personalized certificate.",
	IntroNamePlaceholder: "Enter your full name",
	IntroNameTooShort:    "Please enter your name (minimum 2 characters)",
	IntroStart:           "Start Assessment",

	QuizProgress:    "Question %d of %d",
	QuizPrevious:    "Previous",
	QuizNext:        "Next",
	QuizFinish:      "See results",
	QuizSelectFirst: "Please select an answer before continuing",
	QuizIncomplete:  "Please answer all questions before finishing",

	ResultsTitle:       "Your DISC Profile",
	ResultsSubtitle:    "Here is how your answers map onto the four DISC dimensions.",
	ResultsPrimary:     "Primary trait",
	ResultsSecondary:   "Secondary trait",
	ResultsKeyInsight:  "Key Insight",
	ResultsChart:       "Profile chart",
	ResultsTable:       "Relationship insights",
	ResultsDimension:   "Dimension",
	ResultsScore:       "Score",
	ResultsDescription: "Description",
	ResultsRetake:      "Retake test",
	ResultsCertificate: "Download certificate",
	ResultsExport:      "Save to sheet",
	ResultsShare:       "Check out my DISC profile: D: %d%%, I: %d%%, S: %d%%, C: %d%%",
	ResultsSaved:       "Results saved successfully",
	ResultsNone:        "No test results found. Please take the test first.",

	CertTitle:      "DISC Profile Certificate",
	CertSubtitle:   "Personality Assessment Results",
	CertCertifies:  "This certifies that",
	CertCompleted:  "Completed the DISC personality assessment on %s",
	CertProfile:    "Primary personality traits",
	CertSummary:    "%s (%d%%) and %s (%d%%)",
	CertKeyInsight: "Key Insight",
	CertDisclaimer: "This certificate represents results from a self-assessment tool and should be considered in context.",
	CertWritten:    "Certificate saved to %s",

	HistoryTitle:   "Results History",
	HistoryEmpty:   "No saved results yet.",
	HistoryDate:    "Date",
	HistoryName:    "Name",
	HistoryPrimary: "Primary",

	StatsTitle:      "Assessment statistics",
	StatsCount:      "Assessments taken: %d",
	StatsAverage:    "Average scores",
	StatsTopPrimary: "Most frequent primary trait: %s",

	AccountTitle:       "Account",
	AccountSignedInAs:  "Signed in as %s",
	AccountSignedOut:   "Not signed in",
	AccountLogin:       "Login",
	AccountRegister:    "Register",
	AccountLogout:      "Logout",
	AccountEmail:       "Email",
	AccountPassword:    "Password",
	AccountDisplayName: "Display name",
	AccountInvalid:     "Email and password are required",
	AccountWelcome:     "Welcome, %s",

	ExportLoginRequired: "Please login to save your results",
	ExportSuccess:       "Results saved to the sheet",
	ExportFailed:        "Failed to save results",
	ExportConfigSaved:   "Sheet configuration saved",

	LanguageChanged: "Language set to %s",

	HintAnswer:    "Answer",
	HintBack:      "Back",
	HintNavigate:  "Navigate",
	HintSelect:    "Select",
	HintDetails:   "Details",
	HintSubmit:    "Submit",
	HintNextField: "Next field",
	HintCancel:    "Cancel",
	HintQuit:      "Quit",
	HintContinue:  "press any key to continue",
}

var englishQuestions = [20]string{
	"I am assertive, demanding, and decisive.",
	"I enjoy doing multiple tasks at once.",
	"I thrive in a challenge-based environment.",
	"I think about tasks more than others or myself.",
	"I am motivated by accomplishment and authority.",
	"I enjoy influencing others to achieve goals.",
	"I am optimistic about others.",
	"I prefer to collaborate rather than work alone.",
	"I use gestures and animated expressions when I communicate.",
	"I am interested in developing personal connections.",
	"I appreciate predictable situations and environments.",
	"I listen more than I speak.",
	"I am patient and supportive of others.",
	"I prefer to focus on one task until completion.",
	"I strive for stability and harmony in groups.",
	"I prefer clear rules and instructions to follow.",
	"I pay careful attention to details and precision.",
	"I make decisions based on facts and evidence.",
	"I prefer to work with existing processes rather than creating new ones.",
	"I analyze situations before making decisions.",
}

var englishOptions = [4]string{"Strongly Disagree", "Disagree", "Agree", "Strongly Agree"}

var englishDimensions = [4]string{"Dominance", "Influence", "Steadiness", "Compliance"}

var englishMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
