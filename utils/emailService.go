package utils

import (
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"euramax/config"
)

// Generic Send Email
func SendEmail(to, subject, htmlBody string) error {
	cfg := config.AppConfig
	if cfg == nil || cfg.NotificationsDemo || cfg.SendgridApiKey == "" {
		log.Printf("[EMAIL] (demo) to=%s subject=%q", to, subject)
		return nil
	}

	from := mail.NewEmail("Euramax Beveiliging", cfg.EmailSender)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", htmlBody)
	client := sendgrid.NewSendClient(cfg.SendgridApiKey)

	response, err := client.Send(message)
	if err != nil {
		log.Println("[EMAIL] Error sending email:", err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("[EMAIL] Sendgrid returned status %d", response.StatusCode)
		return fmt.Errorf("sendgrid status %d", response.StatusCode)
	}
	log.Printf("[EMAIL] Sent to=%s subject=%q", to, subject)
	return nil
}

// HTML wrapper for the Euramax house style
func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2B4C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2B4C; line-height: 1.6; }
			.content h2 { color: #1A2B4C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.alert-box { background: #FDECEA; padding: 15px; border-radius: 4px; border-left: 4px solid #DC3545; margin: 20px 0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #1A73E8; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>EURAMAX CYBERSECURITY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Euramax. Automatisch gegenereerd beveiligingsbericht.<br>
				Neem bij vragen contact op met IT-beveiliging.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// 1. Welcome / Signup
func SendWelcomeEmail(email, name string) {
	subject := "Welkom bij het Euramax Security Awareness Platform"
	body := fmt.Sprintf(`
		<p>Beste %s,</p>
		<p>Uw account is succesvol aangemaakt.</p>
		<p>U kunt nu starten met de security awareness training en uw voortgang volgen via het dashboard.</p>
		<div class="info-box">
			<strong>Tip:</strong> Begin met de module "Phishing Herkennen" voordat u de overige modules volgt.
		</div>
	`, name)

	go SendEmail(email, subject, getEmailTemplate("Welkom!", body))
}

// 2. Threat alert: rendered plain-text body wrapped in the house template
func SendThreatAlertEmail(email, name, title, textBody string) error {
	htmlBody := "<pre style=\"white-space: pre-wrap; font-family: inherit;\">" +
		strings.ReplaceAll(textBody, "<", "&lt;") + "</pre>"
	return SendEmail(email, title, getEmailTemplate(title, htmlBody))
}

// 3. Module completed
func SendModuleCompletedEmail(email, name, moduleTitle string, score float64) {
	subject := "Module afgerond: " + moduleTitle
	body := fmt.Sprintf(`
		<p>Beste %s,</p>
		<p>Gefeliciteerd! U heeft de module <strong>%s</strong> afgerond met een score van <strong>%.0f%%</strong>.</p>
		<p>Bekijk uw voortgang en de volgende modules in het dashboard.</p>
	`, name, moduleTitle, score*100)

	go SendEmail(email, subject, getEmailTemplate("Module Afgerond", body))
}

// 4. Login Notification
func SendLoginNotificationEmail(email, name, ip, device, timeStr string) {
	subject := "Nieuwe login op uw account"
	body := fmt.Sprintf(`
		<p>Beste %s,</p>
		<p>Er is een nieuwe login op uw account gedetecteerd.</p>
		<div class="info-box">
			<ul style="list-style: none; padding: 0; margin: 0;">
				<li style="margin-bottom: 8px;"><strong>Tijd:</strong> %s</li>
				<li style="margin-bottom: 8px;"><strong>IP-adres:</strong> %s</li>
				<li><strong>Apparaat:</strong> %s</li>
			</ul>
		</div>
		<p>Was u dit zelf, dan kunt u dit bericht negeren.</p>
		<p style="color: #DC3545; font-weight: bold;">Heeft u deze login niet geautoriseerd, neem dan direct contact op met IT-beveiliging.</p>
	`, name, timeStr, ip, device)

	go SendEmail(email, subject, getEmailTemplate("Nieuwe Login Gedetecteerd", body))
}
