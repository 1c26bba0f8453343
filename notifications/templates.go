package notifications

import (
	"fmt"
	"strings"

	"euramax/detector"
	"euramax/models"
)

// ActionButton is a suggested follow-up action shown with a notification
type ActionButton struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

// Template is a Dutch security notification template
type Template struct {
	Title              string         `json:"title"`
	Message            string         `json:"message"`
	Instructions       []string       `json:"instructions"`
	EducationalContent string         `json:"educational_content"`
	UrgencyLevel       string         `json:"urgency_level"`
	ActionButtons      []ActionButton `json:"action_buttons"`
}

// threatTypeNames maps detection categories to their Dutch display names
var threatTypeNames = map[detector.ThreatType]string{
	detector.ThreatPhishing:          "Phishing-aanval",
	detector.ThreatMalware:           "Malware",
	detector.ThreatRansomware:        "Ransomware",
	detector.ThreatDDoS:              "DDoS-aanval",
	detector.ThreatSocialEngineering: "Social Engineering",
	detector.ThreatDataBreach:        "Datalek",
	detector.ThreatInsider:           "Interne bedreiging",
	detector.ThreatAPT:               "Geavanceerde aanhoudende bedreiging",
}

var phishingTemplates = map[detector.Severity]Template{
	detector.SeverityCritical: {
		Title:   "KRITIEKE PHISHING-AANVAL GEDETECTEERD",
		Message: "Er is een zeer gevaarlijke phishing-aanval onderschept die gericht is op uw organisatie. Onmiddellijke actie is vereist.",
		Instructions: []string{
			"OPEN GEEN verdachte emails die u recent heeft ontvangen",
			"Controleer uw inbox op emails van onbekende afzenders",
			"Rapporteer verdachte emails aan security@euramax.eu",
			"Verander uw wachtwoorden als u recent op links heeft geklikt",
			"Neem contact op met IT-beveiliging voor hulp",
		},
		EducationalContent: "Phishing-aanvallen gebruiken vaak urgente taal en vragen om persoonlijke gegevens. Herken ze aan: onjuiste spelfouten, verdachte afzenders, urgente actie-oproepen en links naar onbekende websites.",
		UrgencyLevel:       "KRITIEK",
		ActionButtons: []ActionButton{
			{Text: "Rapporteer Verdachte Email", Action: "report_email"},
			{Text: "Neem Contact Op Met IT", Action: "contact_it"},
			{Text: "Bekijk Veiligheidstips", Action: "view_tips"},
		},
	},
	detector.SeverityHigh: {
		Title:   "Phishing-Aanval Gedetecteerd",
		Message: "Een phishing-poging is automatisch geblokkeerd. Controleer uw email voor verdachte berichten.",
		Instructions: []string{
			"Controleer uw inbox op vergelijkbare emails",
			"Verwijder verdachte emails zonder te openen",
			"Rapporteer incident aan IT-beveiliging",
			"Deel deze waarschuwing met collega's",
		},
		EducationalContent: "Deze phishing-aanval toont typische kenmerken zoals neppe urgentie en oplichting. Wees altijd voorzichtig met emails die om persoonlijke informatie vragen.",
		UrgencyLevel:       "HOOG",
		ActionButtons: []ActionButton{
			{Text: "Controleer Email", Action: "check_email"},
			{Text: "Rapporteer Incident", Action: "report_incident"},
		},
	},
	detector.SeverityMedium: {
		Title:   "Verdachte Email Activiteit",
		Message: "Onze AI heeft verdachte email activiteit gedetecteerd. Extra voorzichtigheid is aangeraden.",
		Instructions: []string{
			"Wees extra voorzichtig met emails vandaag",
			"Controleer afzenders voordat u reageert",
			"Rapporteer ongewone emails",
			"Herinner collega's aan email beveiliging",
		},
		EducationalContent: "Verdachte email patronen kunnen wijzen op gerichte aanvallen. Blijf waakzaam en vertrouw uw instinct bij twijfelachtige emails.",
		UrgencyLevel:       "MEDIUM",
		ActionButtons: []ActionButton{
			{Text: "Bekijk Richtlijnen", Action: "view_guidelines"},
		},
	},
}

var malwareTemplates = map[detector.Severity]Template{
	detector.SeverityCritical: {
		Title:   "KRITIEKE MALWARE GEDETECTEERD",
		Message: "Gevaarlijke malware is gedetecteerd en automatisch in quarantaine geplaatst. Uw systeem wordt beschermd.",
		Instructions: []string{
			"STOP met het gebruiken van het geïnfecteerde systeem",
			"Koppel het systeem los van het netwerk",
			"Neem onmiddellijk contact op met IT-beveiliging",
			"Voer geen bestanden uit van USB-sticks of downloads",
			"Waarschuw collega's over mogelijke besmetting",
		},
		EducationalContent: "Malware kan zich snel verspreiden en systemen beschadigen. Herken malware door: onverwachte pop-ups, langzame prestaties, onbekende programma's en verdachte netwerkactiviteit.",
		UrgencyLevel:       "KRITIEK",
		ActionButtons: []ActionButton{
			{Text: "Noodprotocol Activeren", Action: "activate_emergency"},
			{Text: "Isoleer Systeem", Action: "isolate_system"},
			{Text: "Contact IT-Beveiliging", Action: "contact_security"},
		},
	},
}

var ddosTemplates = map[detector.Severity]Template{
	detector.SeverityHigh: {
		Title:   "DDoS-Aanval Gedetecteerd",
		Message: "Een DDoS-aanval op onze systemen is gedetecteerd. Automatische verdediging is geactiveerd.",
		Instructions: []string{
			"Verwacht mogelijke vertragingen in systemen",
			"Gebruik kritieke systemen met voorzichtigheid",
			"Rapporteer ongewone netwerkproblemen",
			"Volg updates via officiële kanalen",
		},
		EducationalContent: "DDoS-aanvallen overbelasten netwerken met verkeer. Onze systemen zijn uitgerust met automatische verdediging om de impact te minimaliseren.",
		UrgencyLevel:       "HOOG",
		ActionButtons: []ActionButton{
			{Text: "Bekijk Systeemstatus", Action: "view_status"},
			{Text: "Rapporteer Problemen", Action: "report_issues"},
		},
	},
}

// SelectTemplate picks the template for a threat, falling back within the
// category and finally to a generic one.
func SelectTemplate(threatType detector.ThreatType, severity detector.Severity) Template {
	switch threatType {
	case detector.ThreatPhishing:
		if t, ok := phishingTemplates[severity]; ok {
			return t
		}
		return phishingTemplates[detector.SeverityMedium]
	case detector.ThreatMalware:
		if t, ok := malwareTemplates[severity]; ok {
			return t
		}
		return malwareTemplates[detector.SeverityCritical]
	case detector.ThreatDDoS:
		if t, ok := ddosTemplates[severity]; ok {
			return t
		}
		return ddosTemplates[detector.SeverityHigh]
	}

	name, ok := threatTypeNames[threatType]
	if !ok {
		name = "Beveiligingsbedreiging"
	}
	return Template{
		Title:   name + " Gedetecteerd",
		Message: "Een beveiligingsbedreiging is gedetecteerd en gemonitord.",
		Instructions: []string{
			"Volg standaard beveiligingsprotocollen",
			"Rapporteer verdachte activiteiten",
		},
		EducationalContent: "Blijf waakzaam voor cybersecurity bedreigingen en volg altijd de beveiligingsrichtlijnen.",
		UrgencyLevel:       strings.ToUpper(string(severity)),
		ActionButtons: []ActionButton{
			{Text: "Bekijk Details", Action: "view_details"},
		},
	}
}

// Personalize extends a template with role-specific instructions and the
// threat's source details.
func Personalize(t Template, user *models.User, result *detector.Result) Template {
	instructions := append([]string{}, t.Instructions...)
	switch user.Role {
	case "ADMIN":
		instructions = append(instructions,
			"Controleer systeem logs voor verdere analyse",
			"Overweeg escalatie naar externe beveiligingsexperts",
			"Update beveiligingsbeleid indien nodig")
	case "MANAGER":
		instructions = append(instructions,
			"Informeer uw team over deze bedreiging",
			"Overweeg werkstromen aanpassingen voor verhoogde beveiliging")
	}

	message := t.Message
	if result.SourceData != nil {
		if sender, ok := result.SourceData["sender"].(string); ok && sender != "" {
			message += fmt.Sprintf("\n\nAfzender: %s", sender)
		}
		if filename, ok := result.SourceData["filename"].(string); ok && filename != "" {
			message += fmt.Sprintf("\n\nBestand: %s", filename)
		}
	}

	t.Instructions = instructions
	t.Message = message
	return t
}

// EmailBody renders the full Dutch email for a threat notification
func EmailBody(name string, t Template, result *detector.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Beste %s,\n\n%s\n\nURGENTIE: %s\n\nINSTRUCTIES:\n", name, t.Message, t.UrgencyLevel)
	for _, instruction := range t.Instructions {
		fmt.Fprintf(&b, "- %s\n", instruction)
	}
	fmt.Fprintf(&b, "\nEDUCATIEVE INFORMATIE:\n%s\n\nTECHNISCHE DETAILS:\n", t.EducationalContent)
	fmt.Fprintf(&b, "- Bedreiging Type: %s\n", threatTypeNames[result.ThreatType])
	fmt.Fprintf(&b, "- Ernst Niveau: %s\n", strings.ToUpper(string(result.Severity)))
	fmt.Fprintf(&b, "- Betrouwbaarheid: %.0f%%\n", result.Confidence*100)
	fmt.Fprintf(&b, "- Detectie Tijd: %s\n", result.Timestamp.Format("02-01-2006 15:04:05"))
	b.WriteString("\nDit is een automatisch gegenereerd bericht van het Euramax Cybersecurity Systeem.\n\nMet vriendelijke groet,\nHet Euramax Beveiligingsteam\n")
	return b.String()
}

// SMSBody renders the short SMS variant, truncating the message
func SMSBody(t Template) string {
	msg := t.Message
	if len(msg) > 100 {
		msg = msg[:100] + "..."
	}
	return fmt.Sprintf("EURAMAX BEVEILIGING: %s - %s Controleer email voor details.", t.Title, msg)
}
