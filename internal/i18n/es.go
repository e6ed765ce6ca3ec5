package i18n

var spanish = catalog{
	AppTitle:   "Evaluación de Personalidad DISC",
	AppTagline: "Descubre tu estilo de comportamiento",
	AppFooter:  "Una herramienta de autoevaluación. Los resultados deben considerarse en contexto.",

	MenuStart:    "Realizar la evaluación",
	MenuResume:   "Continuar la evaluación",
	MenuHistory:  "Historial de resultados",
	MenuAccount:  "Cuenta",
	MenuLanguage: "Idioma",
	MenuQuit:     "Salir",

	IntroBadge:           "Evaluación de Personalidad",
	IntroTitle:           "Descubre tu Perfil de Personalidad DISC",
	IntroBody:            "La evaluación DISC te ayuda a comprender tu estilo de comportamiento y cómo te relacionas con los demás. Completa este breve cuestionario para recibir tu perfil personalizado.",
	IntroDiscover:        "Lo que descubrirás",
	IntroDominance:       "Cómo abordas los problemas y desafíos",
	IntroInfluence:       "Cómo interactúas con los demás y los persuades",
	IntroSteadiness:      "Tu ritmo y constancia en las actividades",
	IntroCompliance:      "Cómo respondes a las reglas y procedimientos",
	IntroReady:           "¿Listo para comenzar?",
	IntroNamePrompt:      "Ingresa tu nombre para recibir un certificado personalizado.",
	IntroNamePlaceholder: "Ingresa tu nombre completo",
	IntroNameTooShort:    "Por favor ingresa tu nombre (mínimo 2 caracteres)",
	IntroStart:           "Comenzar evaluación",

	QuizProgress:    "Pregunta %d de %d",
	QuizPrevious:    "Anterior",
	QuizNext:        "Siguiente",
	QuizFinish:      "Ver resultados",
	QuizSelectFirst: "Por favor selecciona una respuesta antes de continuar",
	QuizIncomplete:  "Por favor responde todas las preguntas antes de terminar",

	ResultsTitle:       "Tu Perfil DISC",
	ResultsSubtitle:    "Así se reflejan tus respuestas en las cuatro dimensiones DISC.",
	ResultsPrimary:     "Rasgo principal",
	ResultsSecondary:   "Rasgo secundario",
	ResultsKeyInsight:  "Idea clave",
	ResultsChart:       "Gráfico del perfil",
	ResultsTable:       "Perspectivas de relación",
	ResultsDimension:   "Dimensión",
	ResultsScore:       "Puntuación",
	ResultsDescription: "Descripción",
	ResultsRetake:      "Repetir la prueba",
	ResultsCertificate: "Descargar certificado",
	ResultsExport:      "Guardar en la hoja",
	ResultsShare:       "Mira mi perfil DISC: D: %d%%, I: %d%%, S: %d%%, C: %d%%",
	ResultsSaved:       "Resultados guardados correctamente",
	ResultsNone:        "No se encontraron resultados. Realiza la prueba primero.",

	CertTitle:      "Certificado de Perfil DISC",
	CertSubtitle:   "Resultados de la Evaluación de Personalidad",
	CertCertifies:  "Se certifica que",
	CertCompleted:  "Completó la evaluación de personalidad DISC el %s",
	CertProfile:    "Rasgos de personalidad principales",
	CertSummary:    "%s (%d%%) y %s (%d%%)",
	CertKeyInsight: "Idea clave",
	CertDisclaimer: "Este certificado representa los resultados de una herramienta de autoevaluación y debe considerarse en contexto.",
	CertWritten:    "Certificado guardado en %s",

	HistoryTitle:   "Historial de Resultados",
	HistoryEmpty:   "Aún no hay resultados guardados.",
	HistoryDate:    "Fecha",
	HistoryName:    "Nombre",
	HistoryPrimary: "Principal",

	StatsTitle:      "Estadísticas de evaluación",
	StatsCount:      "Evaluaciones realizadas: %d",
	StatsAverage:    "Puntuaciones promedio",
	StatsTopPrimary: "Rasgo principal más frecuente: %s",

	AccountTitle:       "Cuenta",
	AccountSignedInAs:  "Sesión iniciada como %s",
	AccountSignedOut:   "Sin sesión iniciada",
	AccountLogin:       "Iniciar sesión",
	AccountRegister:    "Registrarse",
	AccountLogout:      "Cerrar sesión",
	AccountEmail:       "Correo electrónico",
	AccountPassword:    "Contraseña",
	AccountDisplayName: "Nombre visible",
	AccountInvalid:     "El correo y la contraseña son obligatorios",
	AccountWelcome:     "Bienvenido, %s",

	ExportLoginRequired: "Inicia sesión para guardar tus resultados",
	ExportSuccess:       "Resultados guardados en la hoja",
	ExportFailed:        "No se pudieron guardar los resultados",
	ExportConfigSaved:   "Configuración de la hoja guardada",

	LanguageChanged: "Idioma cambiado a %s",

	HintAnswer:    "Responder",
	HintBack:      "Volver",
	HintNavigate:  "Navegar",
	HintSelect:    "Seleccionar",
	HintDetails:   "Detalles",
	HintSubmit:    "Enviar",
	HintNextField: "Siguiente campo",
	HintCancel:    "Cancelar",
	HintQuit:      "Salir",
	HintContinue:  "pulsa cualquier tecla para continuar",
}

var spanishQuestions = [20]string{
	"Soy asertivo, exigente y decidido.",
	"Disfruto hacer varias tareas a la vez.",
	"Me desenvuelvo bien en entornos basados en desafíos.",
	"Pienso más en las tareas que en los demás o en mí mismo.",
	"Me motivan los logros y la autoridad.",
	"Disfruto influir en otros para alcanzar objetivos.",
	"Soy optimista respecto a los demás.",
	"Prefiero colaborar en lugar de trabajar solo.",
	"Uso gestos y expresiones animadas cuando me comunico.",
	"Me interesa desarrollar conexiones personales.",
	"Aprecio las situaciones y entornos predecibles.",
	"Escucho más de lo que hablo.",
	"Soy paciente y apoyo a los demás.",
	"Prefiero concentrarme en una tarea hasta terminarla.",
	"Busco estabilidad y armonía en los grupos.",
	"Prefiero reglas e instrucciones claras que seguir.",
	"Presto mucha atención a los detalles y la precisión.",
	"Tomo decisiones basadas en hechos y evidencia.",
	"Prefiero trabajar con procesos existentes en lugar de crear nuevos.",
	"Analizo las situaciones antes de tomar decisiones.",
}

var spanishOptions = [4]string{"Totalmente en desacuerdo", "En desacuerdo", "De acuerdo", "Totalmente de acuerdo"}

var spanishDimensions = [4]string{"Dominancia", "Influencia", "Estabilidad", "Cumplimiento"}

var spanishMonths = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}
