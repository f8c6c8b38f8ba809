package i18n

// Tarjimalar jadvali: til -> kalit -> matn.
// Mamlakat va fan nomlari kalit sifatida ispancha (asl) ko'rinishida turadi,
// shuning uchun "es" da ular takrorlanmaydi: topilmasa kalitning o'zi qaytadi.
var translations = map[string]map[string]string{
	"es": {
		"language_selector":      "Selecciona el idioma",
		"sidebar_title":          "Navegación",
		"home":                   "Inicio",
		"about":                  "Acerca de",
		"contact":                "Contacto",
		"about_tool":             "Acerca de esta herramienta",
		"tool_description":       "Esta herramienta utiliza inteligencia artificial para sugerir trayectorias educativas y profesionales según tus intereses, habilidades y rendimiento académico.",
		"app_title":              "Orientador de Trayectorias Profesionales",
		"input_instruction":      "Completa la siguiente información para recibir sugerencias personalizadas.",
		"are_you_student":        "¿Eres estudiante?",
		"yes":                    "Sí",
		"no":                     "No",
		"interests":              "Intereses",
		"skills":                 "Habilidades",
		"select_country":         "Selecciona tu país",
		"current_performance":    "Rendimiento académico actual: {performance}",
		"get_suggestions":        "Obtener sugerencias",
		"generating_suggestions": "Generando sugerencias...",
		"trajectory_suggestions": "Sugerencias de trayectoria",
		"input_warning":          "Por favor, completa tus intereses y habilidades.",
		"ai_error":               "Lo sentimos, ocurrió un error al generar las sugerencias. Inténtalo de nuevo más tarde.",
		"bot_grade_prompt":       "Nota de {subject} ({min}-{max}):",
		"bot_invalid_grade":      "Introduce un número válido.",
		"bot_cancelled":          "Formulario cancelado. Usa /start para empezar de nuevo.",
		"bot_busy":               "Espera, todavía estoy generando tus sugerencias.",
	},
	"en": {
		"language_selector":      "Select language",
		"sidebar_title":          "Navigation",
		"home":                   "Home",
		"about":                  "About",
		"contact":                "Contact",
		"about_tool":             "About this tool",
		"tool_description":       "This tool uses artificial intelligence to suggest educational and career paths based on your interests, skills and academic performance.",
		"app_title":              "Career Path Advisor",
		"input_instruction":      "Fill in the information below to receive personalized suggestions.",
		"are_you_student":        "Are you a student?",
		"yes":                    "Yes",
		"no":                     "No",
		"interests":              "Interests",
		"skills":                 "Skills",
		"select_country":         "Select your country",
		"current_performance":    "Current academic performance: {performance}",
		"get_suggestions":        "Get suggestions",
		"generating_suggestions": "Generating suggestions...",
		"trajectory_suggestions": "Career path suggestions",
		"input_warning":          "Please fill in your interests and skills.",
		"ai_error":               "Sorry, an error occurred while generating suggestions. Please try again later.",
		"bot_grade_prompt":       "Grade for {subject} ({min}-{max}):",
		"bot_invalid_grade":      "Please enter a valid number.",
		"bot_cancelled":          "Form cancelled. Use /start to begin again.",
		"bot_busy":               "Please wait, your suggestions are still being generated.",

		"México":         "Mexico",
		"España":         "Spain",
		"Estados Unidos": "United States",
		"Brasil":         "Brazil",
		"Italia":         "Italy",

		"Matemáticas":                    "Mathematics",
		"Matemática":                     "Mathematics",
		"Matematica":                     "Mathematics",
		"Español":                        "Spanish",
		"Castellano":                     "Spanish",
		"Lengua Castellana y Literatura": "Spanish Language and Literature",
		"Lenguaje":                       "Language",
		"Português":                      "Portuguese",
		"Italiano":                       "Italian",
		"Ciencias":                       "Science",
		"Ciências":                       "Science",
		"Scienze":                        "Science",
		"Ciencias Naturales":             "Natural Sciences",
		"Ciencias Sociales":              "Social Sciences",
		"Historia":                       "History",
		"História":                       "History",
		"Storia":                         "History",
		"Geografía e Historia":           "Geography and History",
		"Inglés":                         "English",
		"Inglês":                         "English",
		"Inglese":                        "English",
	},
	"pt": {
		"language_selector":      "Selecione o idioma",
		"sidebar_title":          "Navegação",
		"home":                   "Início",
		"about":                  "Sobre",
		"contact":                "Contato",
		"about_tool":             "Sobre esta ferramenta",
		"tool_description":       "Esta ferramenta usa inteligência artificial para sugerir trajetórias educacionais e profissionais com base nos seus interesses, habilidades e desempenho acadêmico.",
		"app_title":              "Orientador de Trajetórias Profissionais",
		"input_instruction":      "Preencha as informações abaixo para receber sugestões personalizadas.",
		"are_you_student":        "Você é estudante?",
		"yes":                    "Sim",
		"no":                     "Não",
		"interests":              "Interesses",
		"skills":                 "Habilidades",
		"select_country":         "Selecione seu país",
		"current_performance":    "Desempenho acadêmico atual: {performance}",
		"get_suggestions":        "Obter sugestões",
		"generating_suggestions": "Gerando sugestões...",
		"trajectory_suggestions": "Sugestões de trajetória",
		"input_warning":          "Por favor, preencha seus interesses e habilidades.",
		"ai_error":               "Desculpe, ocorreu um erro ao gerar as sugestões. Tente novamente mais tarde.",
		"bot_grade_prompt":       "Nota de {subject} ({min}-{max}):",
		"bot_invalid_grade":      "Digite um número válido.",
		"bot_cancelled":          "Formulário cancelado. Use /start para recomeçar.",
		"bot_busy":               "Aguarde, suas sugestões ainda estão sendo geradas.",

		"México":         "México",
		"España":         "Espanha",
		"Estados Unidos": "Estados Unidos",
		"Italia":         "Itália",

		"Matemáticas":                    "Matemática",
		"Matematica":                     "Matemática",
		"Math":                           "Matemática",
		"Español":                        "Espanhol",
		"Castellano":                     "Espanhol",
		"Lengua Castellana y Literatura": "Língua Espanhola e Literatura",
		"Lenguaje":                       "Linguagem",
		"English":                        "Inglês",
		"Italiano":                       "Italiano",
		"Ciencias":                       "Ciências",
		"Science":                        "Ciências",
		"Scienze":                        "Ciências",
		"Ciencias Naturales":             "Ciências Naturais",
		"Ciencias Sociales":              "Ciências Sociais",
		"Social Studies":                 "Estudos Sociais",
		"Historia":                       "História",
		"Storia":                         "História",
		"Geografía e Historia":           "Geografia e História",
		"Inglés":                         "Inglês",
		"Inglese":                        "Inglês",
		"Foreign Language":               "Língua Estrangeira",
	},
	"it": {
		"language_selector":      "Seleziona la lingua",
		"sidebar_title":          "Navigazione",
		"home":                   "Home",
		"about":                  "Chi siamo",
		"contact":                "Contatti",
		"about_tool":             "Informazioni su questo strumento",
		"tool_description":       "Questo strumento utilizza l'intelligenza artificiale per suggerire percorsi formativi e professionali in base ai tuoi interessi, alle tue competenze e al tuo rendimento scolastico.",
		"app_title":              "Consulente per Percorsi Professionali",
		"input_instruction":      "Compila le informazioni seguenti per ricevere suggerimenti personalizzati.",
		"are_you_student":        "Sei uno studente?",
		"yes":                    "Sì",
		"no":                     "No",
		"interests":              "Interessi",
		"skills":                 "Competenze",
		"select_country":         "Seleziona il tuo paese",
		"current_performance":    "Rendimento scolastico attuale: {performance}",
		"get_suggestions":        "Ottieni suggerimenti",
		"generating_suggestions": "Generazione dei suggerimenti...",
		"trajectory_suggestions": "Suggerimenti di percorso",
		"input_warning":          "Per favore, compila i tuoi interessi e le tue competenze.",
		"ai_error":               "Spiacenti, si è verificato un errore durante la generazione dei suggerimenti. Riprova più tardi.",
		"bot_grade_prompt":       "Voto in {subject} ({min}-{max}):",
		"bot_invalid_grade":      "Inserisci un numero valido.",
		"bot_cancelled":          "Modulo annullato. Usa /start per ricominciare.",
		"bot_busy":               "Attendi, i tuoi suggerimenti sono ancora in preparazione.",

		"México":         "Messico",
		"España":         "Spagna",
		"Estados Unidos": "Stati Uniti",
		"Brasil":         "Brasile",

		"Matemáticas":                    "Matematica",
		"Matemática":                     "Matematica",
		"Math":                           "Matematica",
		"Español":                        "Spagnolo",
		"Castellano":                     "Spagnolo",
		"Lengua Castellana y Literatura": "Lingua e Letteratura Spagnola",
		"Lenguaje":                       "Linguaggio",
		"English":                        "Inglese",
		"Português":                      "Portoghese",
		"Ciencias":                       "Scienze",
		"Ciências":                       "Scienze",
		"Science":                        "Scienze",
		"Ciencias Naturales":             "Scienze Naturali",
		"Ciencias Sociales":              "Scienze Sociali",
		"Social Studies":                 "Studi Sociali",
		"Historia":                       "Storia",
		"História":                       "Storia",
		"Geografía e Historia":           "Geografia e Storia",
		"Inglés":                         "Inglese",
		"Inglês":                         "Inglese",
		"Foreign Language":               "Lingua Straniera",
	},
}
