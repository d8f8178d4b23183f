package utils

import (
	"botapi/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail delivers an HTML mail over SMTP. When no sender is
// configured the mail is logged instead, so local runs and tests do not
// need a mailbox.
func SendEmail(to []string, subject string, htmlBody string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	smtpHost := config.AppConfig.SMTPHost
	smtpPort := config.AppConfig.SMTPPort

	if from == "" {
		log.Printf("[EMAIL] sender not configured, skipping mail to %v: %s", to, subject)
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}

	log.Printf("Email sent successfully to %v", to)
	return nil
}

// getEmailTemplate wraps body content in the shared HTML layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #10141F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #10141F; line-height: 1.6; }
			.content h2 { color: #10141F; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #2563EB; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.otp { text-align: center; color: #2563EB; font-size: 40px; margin: 20px 0; letter-spacing: 6px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #2563EB; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>TRADEBOT</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				Automated message, do not reply.<br>
				Trading involves risk. Please read all documents carefully.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a freshly registered user
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to Tradebot"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your account has been created successfully.</p>
		<p>Verify your email with the OTP we just sent, then browse our bots and subscribe to start receiving trade signals.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendOTPEmail delivers a verification code
func SendOTPEmail(otp, email string) {
	subject := "Your Tradebot Verification Code"
	body := fmt.Sprintf(`
		<p>Your One Time Password (OTP) is:</p>
		<h1 class="otp">%s</h1>
		<p>The code is valid for 5 minutes. Do not share it with anyone.</p>
	`, otp)

	go SendEmail([]string{email}, subject, getEmailTemplate("OTP Verification", body))
}

// SendPasswordResetEmail delivers the reset link
func SendPasswordResetEmail(email, name, link string) {
	subject := "Reset Your Tradebot Password"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We received a request to reset your password. Click the button below to choose a new one.</p>
		<a href="%s" class="btn">Reset Password</a>
		<p style="margin-top: 20px;">The link is valid for 30 minutes. If you did not request this, you can safely ignore this email.</p>
	`, name, link)

	go SendEmail([]string{email}, subject, getEmailTemplate("Password Reset", body))
}

// SendSubscriptionEmail confirms a bot subscription
func SendSubscriptionEmail(email, name, botName string) {
	subject := "Subscription Confirmed: " + botName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully subscribed to <strong>%s</strong>.</p>
		<div class="info-box">
			You will now receive trade signals from this bot. Check your dashboard for the latest calls.
		</div>
	`, name, botName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Subscription Successful", body))
}

// SendLoginNotificationEmail alerts the user about a new login
func SendLoginNotificationEmail(email, name, ip, device, timeStr string) {
	subject := "New Login Alert"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We noticed a new login to your account.</p>
		<div class="info-box">
			<ul style="list-style: none; padding: 0; margin: 0;">
				<li style="margin-bottom: 8px;"><strong>Time:</strong> %s</li>
				<li style="margin-bottom: 8px;"><strong>IP Address:</strong> %s</li>
				<li><strong>Device:</strong> %s</li>
			</ul>
		</div>
		<p>If this was you, you can safely ignore this email. If not, please reset your password immediately.</p>
	`, name, timeStr, ip, device)

	go SendEmail([]string{email}, subject, getEmailTemplate("New Login Detected", body))
}
