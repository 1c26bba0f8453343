package course

// DefaultModules returns the built-in Dutch cybersecurity awareness course.
// This is the static catalog content; LoadDefaultCatalog validates it at
// startup.
func DefaultModules() []*CourseModule {
	return []*CourseModule{
		phishingModule(),
		passwordModule(),
		malwareModule(),
		dataProtectionModule(),
		socialEngineeringModule(),
	}
}

// LoadDefaultCatalog builds the catalog from the built-in content
func LoadDefaultCatalog() (*Catalog, error) {
	return NewCatalog(DefaultModules())
}

func phishingModule() *CourseModule {
	return &CourseModule{
		ID:               "phishing-basics",
		Title:            "Phishing Herkennen en Voorkomen",
		Description:      "Leer hoe je phishing-aanvallen kunt herkennen en jezelf kunt beschermen",
		Difficulty:       DifficultyBeginner,
		EstimatedMinutes: 15,
		Topics:           []string{"phishing", "email_security", "social_engineering"},
		LearningObjectives: []string{
			"Herken de typische kenmerken van phishing-emails",
			"Controleer links en afzenders voordat u klikt",
			"Weet hoe u verdachte emails rapporteert",
		},
		Content: []string{
			"Phishing is een vorm van cybercriminaliteit waarbij aanvallers zich voordoen als betrouwbare entiteiten om gevoelige informatie te stelen, zoals wachtwoorden, creditcardgegevens en bedrijfsgegevens.",
			"Veelvoorkomende technieken: gespoofde afzenders die lijken van bekende bedrijven te komen, urgente taal ('Uw account wordt opgeschort binnen 24 uur') en verdachte links die niet matchen met de beweerde afzender.",
			"Herkenningssignalen: spelfouten en grammaticafouten, generieke begroetingen ('Beste klant'), dringende actie-oproepen, onverwachte attachments en links die niet overeenkomen met de tekst.",
			"Beschermingsmaatregelen: verifieer altijd de afzender via een ander kanaal, hover over links om de echte bestemming te zien, download geen onverwachte attachments en rapporteer verdachte emails aan security@euramax.eu.",
			"Bij vermoeden van phishing: stop (open geen links of attachments), rapporteer het incident, verwijder de email en controleer of collega's dezelfde email hebben ontvangen.",
		},
		QuizQuestions: []QuizQuestion{
			{
				ID:          "phish_q1",
				ModuleID:    "phishing-basics",
				Type:        QuestionMultipleChoice,
				Difficulty:  DifficultyBeginner,
				Topic:       "phishing",
				Points:      1,
				Text:        "Welke van de volgende is GEEN typisch kenmerk van een phishing-email?",
				Explanation: "Persoonlijke begroetingen met uw echte naam zijn juist een teken van legitimiteit. Phishing-emails gebruiken vaak generieke begroetingen.",
				Answers: []Answer{
					{ID: "a1", Text: "Urgente taal en dreigingen", IsCorrect: false, Explanation: "Dit is wel een typisch kenmerk van phishing"},
					{ID: "a2", Text: "Spelfouten in de tekst", IsCorrect: false, Explanation: "Phishing-emails bevatten vaak spelfouten"},
					{ID: "a3", Text: "Persoonlijke begroeting met uw naam", IsCorrect: true, Explanation: "Correct! Legitieme emails gebruiken vaak uw echte naam"},
					{ID: "a4", Text: "Verdachte links of attachments", IsCorrect: false, Explanation: "Dit is een duidelijk phishing-kenmerk"},
				},
			},
			{
				ID:          "phish_q2",
				ModuleID:    "phishing-basics",
				Type:        QuestionMultipleChoice,
				Difficulty:  DifficultyIntermediate,
				Topic:       "phishing",
				Points:      1,
				Text:        "U ontvangt een email van 'security@euramax.eu' die vraagt om uw wachtwoord. Wat doet u?",
				Explanation: "Legitieme bedrijven vragen nooit om wachtwoorden via email. Verifieer altijd via een ander kanaal.",
				Answers: []Answer{
					{ID: "b1", Text: "Het wachtwoord direct invullen", IsCorrect: false, Explanation: "Nooit doen! Bedrijven vragen nooit om wachtwoorden"},
					{ID: "b2", Text: "De email negeren", IsCorrect: false, Explanation: "Beter om te rapporteren voor anderen"},
					{ID: "b3", Text: "Contact opnemen via telefoon om te verifiëren", IsCorrect: true, Explanation: "Correct! Altijd via een ander kanaal verifiëren"},
					{ID: "b4", Text: "De email doorsturen naar collega's", IsCorrect: false, Explanation: "Dit kan de phishing verspreiden"},
				},
			},
			{
				ID:          "phish_q3",
				ModuleID:    "phishing-basics",
				Type:        QuestionTrueFalse,
				Difficulty:  DifficultyBeginner,
				Topic:       "phishing",
				Points:      1,
				Text:        "Een email beweert van uw bank te komen, maar de link verwijst naar 'bank-verificatie.tk'. Is dit verdacht?",
				Explanation: "Ja, dit is zeer verdacht. Banken gebruiken hun eigen domeinen (.nl, .com) en geen .tk-domeinen.",
				Answers: []Answer{
					{ID: "t1", Text: "Ja, dit is verdacht", IsCorrect: true, Explanation: "Correct! .tk-domeinen zijn vaak gebruikt voor phishing"},
					{ID: "t2", Text: "Nee, dit is normaal", IsCorrect: false, Explanation: "Banken gebruiken nooit .tk-domeinen"},
				},
			},
		},
	}
}

func passwordModule() *CourseModule {
	return &CourseModule{
		ID:               "password-security",
		Title:            "Wachtwoordbeveiliging en Authenticatie",
		Description:      "Ontdek beste praktijken voor sterke wachtwoorden en twee-factor authenticatie",
		Difficulty:       DifficultyBeginner,
		EstimatedMinutes: 12,
		Topics:           []string{"passwords", "authentication", "account_security"},
		LearningObjectives: []string{
			"Stel sterke, unieke wachtwoorden samen",
			"Gebruik een wachtwoordmanager",
			"Activeer twee-factor authenticatie",
		},
		Content: []string{
			"Wachtwoorden zijn de eerste verdedigingslinie tegen cyberaanvallen. Zwakke wachtwoorden maken 81% van de databreaches mogelijk.",
			"Sterke wachtwoorden zijn minimaal 12 karakters lang, combineren hoofdletters, kleine letters, cijfers en symbolen, zijn uniek per account en bevatten geen persoonlijke informatie of veelgebruikte patronen.",
			"Wachtwoordmanagers zoals 1Password en Bitwarden genereren sterke, unieke wachtwoorden, onthouden ze voor u en waarschuwen voor hergebruik.",
			"Twee-factor authenticatie voegt een extra beveiligingslaag toe: iets wat u weet (wachtwoord) plus iets wat u heeft (telefoon, token). Hardware tokens zijn veiliger dan SMS-codes.",
			"Bij Euramax geldt: minimaal 12 karakters voor alle accounts, verplichte 2FA voor alle systemen en account lockout na 5 mislukte pogingen.",
		},
		QuizQuestions: []QuizQuestion{
			{
				ID:          "pass_q1",
				ModuleID:    "password-security",
				Type:        QuestionMultipleChoice,
				Difficulty:  DifficultyBeginner,
				Topic:       "passwords",
				Points:      1,
				Text:        "Wat is de aanbevolen minimale lengte voor een veilig wachtwoord?",
				Explanation: "12 karakters is het huidige minimum voor goede beveiliging tegen moderne aanvallen.",
				Answers: []Answer{
					{ID: "p1", Text: "6 karakters", IsCorrect: false, Explanation: "Te kort voor moderne beveiligingseisen"},
					{ID: "p2", Text: "8 karakters", IsCorrect: false, Explanation: "Niet meer voldoende tegen huidige aanvallen"},
					{ID: "p3", Text: "12 karakters", IsCorrect: true, Explanation: "Correct! Dit is het aanbevolen minimum"},
					{ID: "p4", Text: "16 karakters", IsCorrect: false, Explanation: "Dit is goed maar niet het minimum"},
				},
			},
			{
				ID:          "pass_q2",
				ModuleID:    "password-security",
				Type:        QuestionMultipleChoice,
				Difficulty:  DifficultyIntermediate,
				Topic:       "authentication",
				Points:      1,
				Text:        "Welke van deze is het veiligste type twee-factor authenticatie?",
				Explanation: "Hardware tokens zoals YubiKey zijn het veiligst omdat ze niet gekaapt kunnen worden zoals SMS.",
				Answers: []Answer{
					{ID: "p5", Text: "SMS berichten", IsCorrect: false, Explanation: "SMS kan onderschept worden"},
					{ID: "p6", Text: "Email codes", IsCorrect: false, Explanation: "Email accounts kunnen gehackt worden"},
					{ID: "p7", Text: "Hardware tokens (YubiKey)", IsCorrect: true, Explanation: "Correct! Meest veilige optie"},
					{ID: "p8", Text: "Beveiligingsvragen", IsCorrect: false, Explanation: "Beveiligingsvragen zijn niet 2FA"},
				},
			},
		},
	}
}

func malwareModule() *CourseModule {
	return &CourseModule{
		ID:               "malware-protection",
		Title:            "Malware Bescherming",
		Description:      "Verstaan wat malware is en hoe je je systeem kunt beschermen",
		Difficulty:       DifficultyIntermediate,
		EstimatedMinutes: 20,
		Topics:           []string{"malware", "antivirus", "ransomware"},
		Prerequisites:    []string{"phishing-basics"},
		LearningObjectives: []string{
			"Onderscheid de belangrijkste malware-types",
			"Herken signalen van een besmetting",
			"Weet hoe u een besmet systeem isoleert",
		},
		Content: []string{
			"Malware (kwaadaardige software) is elk programma dat ontworpen is om schade aan te richten aan computers, netwerken of gebruikers.",
			"Types: virussen (vermenigvuldigen zich via bestanden), trojaanse paarden (vermomd als legitieme software), ransomware (versleutelt bestanden en eist losgeld), spyware (verzamelt heimelijk informatie) en adware (toont ongewenste advertenties).",
			"Bescherming: antivirussoftware met real-time scanning, automatische besturingssysteem-updates en het vermijden van end-of-life software.",
			"Dagelijkse praktijken: houd software up-to-date, gebruik standaard user accounts, wees voorzichtig met downloads en maak regelmatig backups.",
			"Vermijd deze risico's: onbekende email attachments openen, software van dubieuze websites downloaden, admin rechten voor dagelijks gebruik en USB-sticks van onbekende herkomst.",
		},
		QuizQuestions: []QuizQuestion{
			{
				ID:          "mal_q1",
				ModuleID:    "malware-protection",
				Type:        QuestionMultipleChoice,
				Difficulty:  DifficultyIntermediate,
				Topic:       "malware",
				Points:      1,
				Text:        "Welke type malware versleutelt uw bestanden en vraagt losgeld?",
				Explanation: "Ransomware versleutelt bestanden en eist betaling voor de ontsleuteling.",
				Answers: []Answer{
					{ID: "m1", Text: "Virus", IsCorrect: false, Explanation: "Virussen vermenigvuldigen zich maar eisen geen losgeld"},
					{ID: "m2", Text: "Spyware", IsCorrect: false, Explanation: "Spyware verzamelt informatie heimelijk"},
					{ID: "m3", Text: "Ransomware", IsCorrect: true, Explanation: "Correct! Ransomware eist losgeld voor ontsleuteling"},
					{ID: "m4", Text: "Adware", IsCorrect: false, Explanation: "Adware toont ongewenste advertenties"},
				},
			},
			{
				ID:          "mal_q2",
				ModuleID:    "malware-protection",
				Type:        QuestionScenario,
				Difficulty:  DifficultyIntermediate,
				Topic:       "malware",
				Points:      1,
				Text:        "Uw computer wordt plotseling zeer langzaam en toont onbekende pop-ups. Wat is de eerste actie?",
				Explanation: "Bij vermoeden van malware moet u eerst het systeem isoleren door de netwerkverbinding te verbreken.",
				Answers: []Answer{
					{ID: "m5", Text: "Opnieuw opstarten", IsCorrect: false, Explanation: "Dit lost het probleem niet op"},
					{ID: "m6", Text: "Antivirus scan uitvoeren", IsCorrect: false, Explanation: "Eerst isoleren van netwerk"},
					{ID: "m7", Text: "Disconnect van internet", IsCorrect: true, Explanation: "Correct! Isoleer eerst het systeem"},
					{ID: "m8", Text: "Alle bestanden verwijderen", IsCorrect: false, Explanation: "Te drastisch en niet nodig"},
				},
			},
		},
	}
}

func dataProtectionModule() *CourseModule {
	return &CourseModule{
		ID:               "data-protection",
		Title:            "Gegevensbescherming en Privacy",
		Description:      "Leer over GDPR-compliance en veilige gegevensbehandeling",
		Difficulty:       DifficultyIntermediate,
		EstimatedMinutes: 18,
		Topics:           []string{"data_protection", "privacy", "gdpr"},
		LearningObjectives: []string{
			"Ken de GDPR-meldplicht bij datalekken",
			"Herken bijzondere categorieën persoonsgegevens",
			"Pas privacy by design toe in uw werk",
		},
		Content: []string{
			"Gegevensbescherming draait om privacy by design in alle systemen, minimale gegevensverzameling en versleuteling van alle gevoelige data.",
			"De GDPR verplicht organisaties om datalekken binnen 72 uur na vaststelling te melden aan de Autoriteit Persoonsgegevens.",
			"Bijzondere categorieën persoonsgegevens (medische informatie, religie, politieke voorkeur) krijgen extra bescherming en mogen alleen onder strikte voorwaarden verwerkt worden.",
			"Euramax contactpunten: Data Protection Officer via privacy@euramax.eu, security incidents via security@euramax.eu.",
		},
		QuizQuestions: []QuizQuestion{
			{
				ID:          "data_q1",
				ModuleID:    "data-protection",
				Type:        QuestionMultipleChoice,
				Difficulty:  DifficultyIntermediate,
				Topic:       "data_protection",
				Points:      1,
				Text:        "Binnen hoeveel uur moet een datalek gemeld worden aan de Autoriteit Persoonsgegevens?",
				Explanation: "GDPR vereist melding binnen 72 uur na vaststelling van het datalek.",
				Answers: []Answer{
					{ID: "d1", Text: "24 uur", IsCorrect: false, Explanation: "Te kort volgens GDPR regelgeving"},
					{ID: "d2", Text: "48 uur", IsCorrect: false, Explanation: "Nog steeds te kort"},
					{ID: "d3", Text: "72 uur", IsCorrect: true, Explanation: "Correct! GDPR vereist melding binnen 72 uur"},
					{ID: "d4", Text: "1 week", IsCorrect: false, Explanation: "Te lang, kan tot boetes leiden"},
				},
			},
			{
				ID:          "data_q2",
				ModuleID:    "data-protection",
				Type:        QuestionMultipleChoice,
				Difficulty:  DifficultyAdvanced,
				Topic:       "privacy",
				Points:      1,
				Text:        "Welke gegevens vallen onder bijzondere categorieën volgens GDPR?",
				Explanation: "Medische gegevens zijn bijzondere persoonsgegevens met extra bescherming onder GDPR.",
				Answers: []Answer{
					{ID: "d5", Text: "Email adressen", IsCorrect: false, Explanation: "Dit zijn gewone persoonsgegevens"},
					{ID: "d6", Text: "Telefoonnummers", IsCorrect: false, Explanation: "Dit zijn gewone persoonsgegevens"},
					{ID: "d7", Text: "Medische informatie", IsCorrect: true, Explanation: "Correct! Valt onder bijzondere categorieën"},
					{ID: "d8", Text: "Bedrijfsnamen", IsCorrect: false, Explanation: "Dit zijn geen persoonsgegevens"},
				},
			},
		},
	}
}

func socialEngineeringModule() *CourseModule {
	return &CourseModule{
		ID:               "social-engineering",
		Title:            "Social Engineering Aanvallen",
		Description:      "Herken en voorkom manipulatietechnieken van cybercriminelen",
		Difficulty:       DifficultyAdvanced,
		EstimatedMinutes: 25,
		Topics:           []string{"social_engineering", "manipulation", "human_factors"},
		Prerequisites:    []string{"phishing-basics"},
		LearningObjectives: []string{
			"Herken manipulatietechnieken aan de telefoon en op de werkvloer",
			"Reageer correct op verdachte verzoeken om informatie",
			"Rapporteer social engineering pogingen",
		},
		Content: []string{
			"Social engineering misbruikt menselijk vertrouwen in plaats van technische kwetsbaarheden. De aanvaller manipuleert u om informatie prijs te geven of acties uit te voeren.",
			"Klassiek scenario: een telefoontje van 'Microsoft Support' over verdachte activiteit op uw computer. Microsoft belt nooit ongevraagd — hang op.",
			"Ook op kantoor: een 'nieuwe IT-collega' die bij de koffieautomaat vraagt welk systeem u voor email gebruikt. Deel geen bedrijfsinformatie met onbekenden en rapporteer het voorval.",
			"Bij vermoeden van social engineering: stop de interactie onmiddellijk, documenteer wat er gebeurde, rapporteer aan security@euramax.eu en verander wachtwoorden bij compromis.",
		},
		QuizQuestions: []QuizQuestion{
			{
				ID:          "social_q1",
				ModuleID:    "social-engineering",
				Type:        QuestionScenario,
				Difficulty:  DifficultyAdvanced,
				Topic:       "social_engineering",
				Points:      2,
				Text:        "Iemand belt zich voor als Microsoft Support en vraagt om toegang tot uw computer. Wat doet u?",
				Explanation: "Microsoft belt nooit ongevraagd. Dit is een klassieke social engineering techniek.",
				Answers: []Answer{
					{ID: "s1", Text: "Toegang verlenen omdat het Microsoft is", IsCorrect: false, Explanation: "Microsoft belt nooit ongevraagd"},
					{ID: "s2", Text: "Ophangen en rapporteren", IsCorrect: true, Explanation: "Correct! Dit is een oplichting"},
					{ID: "s3", Text: "Eerst om legitimatie vragen", IsCorrect: false, Explanation: "Hang direct op, geen discussie"},
					{ID: "s4", Text: "Doorverbinden naar IT", IsCorrect: false, Explanation: "Hang direct op om IT te beschermen"},
				},
			},
			{
				ID:          "social_q2",
				ModuleID:    "social-engineering",
				Type:        QuestionMultipleChoice,
				Difficulty:  DifficultyAdvanced,
				Topic:       "human_factors",
				Points:      2,
				Text:        "Wat is de belangrijkste verdediging tegen social engineering?",
				Explanation: "Bewustzijn en training van medewerkers is de beste verdediging tegen social engineering.",
				Answers: []Answer{
					{ID: "s5", Text: "Firewall software", IsCorrect: false, Explanation: "Technologie helpt niet tegen social engineering"},
					{ID: "s6", Text: "Antivirus programma's", IsCorrect: false, Explanation: "Dit beschermt niet tegen manipulatie"},
					{ID: "s7", Text: "Medewerker bewustzijn en training", IsCorrect: true, Explanation: "Correct! Mensen zijn de eerste verdedigingslinie"},
					{ID: "s8", Text: "Sterke wachtwoorden", IsCorrect: false, Explanation: "Helpt niet als je gemanipuleerd wordt om ze te delen"},
				},
			},
		},
	}
}
