package i18n

// Key identifies a translatable string.
type Key int

const (
	AppTitle Key = iota
	AppTagline
	AppFooter

	MenuStart
	MenuResume
	MenuHistory
	MenuAccount
	MenuLanguage
	MenuQuit

	IntroBadge
	IntroTitle
	IntroBody
	IntroDiscover
	IntroDominance
	IntroInfluence
	IntroSteadiness
	IntroCompliance
	IntroReady
	IntroNamePrompt
	IntroNamePlaceholder
	IntroNameTooShort
	IntroStart

	QuizProgress
	QuizPrevious
	QuizNext
	QuizFinish
	QuizSelectFirst
	QuizIncomplete

	ResultsTitle
	ResultsSubtitle
	ResultsPrimary
	ResultsSecondary
	ResultsKeyInsight
	ResultsChart
	ResultsTable
	ResultsDimension
	ResultsScore
	ResultsDescription
	ResultsRetake
	ResultsCertificate
	ResultsExport
	ResultsShare
	ResultsSaved
	ResultsNone

	CertTitle
	CertSubtitle
	CertCertifies
	CertCompleted
	CertProfile
	CertSummary
	CertKeyInsight
	CertDisclaimer
	CertWritten

	HistoryTitle
	HistoryEmpty
	HistoryDate
	HistoryName
	HistoryPrimary

	StatsTitle
	StatsCount
	StatsAverage
	StatsTopPrimary

	AccountTitle
	AccountSignedInAs
	AccountSignedOut
	AccountLogin
	AccountRegister
	AccountLogout
	AccountEmail
	AccountPassword
	AccountDisplayName
	AccountInvalid
	AccountWelcome

	ExportLoginRequired
	ExportSuccess
	ExportFailed
	ExportConfigSaved

	LanguageChanged

	HintAnswer
	HintBack
	HintNavigate
	HintSelect
	HintDetails
	HintSubmit
	HintNextField
	HintCancel
	HintQuit
	HintContinue

	keyCount
)

// catalog maps every Key to its text in one language.
type catalog [keyCount]string

var catalogs = map[Lang]*catalog{
	English: &english,
	Spanish: &spanish,
}

// T returns the text for key in lang. Unknown languages fall back to English.
func T(lang Lang, key Key) string {
	c, ok := catalogs[lang]
	if !ok {
		c = catalogs[Default]
	}
	if key < 0 || key >= keyCount {
		return ""
	}
	return c[key]
}

// Translator binds a language so call sites can write tr.T(key).
type Translator struct {
	Lang Lang
}

// New returns a translator for lang.
func New(lang Lang) Translator {
	return Translator{Lang: lang}
}

// T returns the text for key.
func (tr Translator) T(key Key) string {
	return T(tr.Lang, key)
}
