package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/mafalia/teranga-network/models"
)

// sendEmail sends a plain-text email using the configured SMTP server.
// Failures are logged, not returned: notification delivery must never block
// the business operation that triggered it.
func sendEmail(to, subject, body string) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	smtpPort := 2525
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			smtpPort = port
		}
	}
	if smtpHost == "" {
		log.Printf("SMTP not configured, skipping email to %s", to)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
	}
}

// NotifyWithdrawalRequested emails the partner that their withdrawal request
// was received.
func NotifyWithdrawalRequested(partner *models.Partner, withdrawal *models.Withdrawal) {
	subject := "Withdrawal request received"
	body := fmt.Sprintf(
		"Dear %s,\n\nYour withdrawal request %s for %.0f FCFA has been received and is pending review.\n\nBest regards,\nMafalia Teranga Network",
		partner.FullName(), withdrawal.Reference, withdrawal.Amount)
	sendEmail(partner.Email, subject, body)
}

// NotifyWithdrawalProcessed emails the partner the outcome of a processed
// withdrawal request.
func NotifyWithdrawalProcessed(partner *models.Partner, withdrawal *models.Withdrawal) {
	var subject, body string
	if withdrawal.Status == models.WithdrawalStatusRejected {
		subject = "Withdrawal request rejected"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour withdrawal request %s was rejected.\nReason: %s\n\nBest regards,\nMafalia Teranga Network",
			partner.FullName(), withdrawal.Reference, withdrawal.RejectionReason)
	} else {
		subject = "Withdrawal request approved"
		body = fmt.Sprintf(
			"Dear %s,\n\nYour withdrawal request %s for %.0f FCFA has been approved and will be paid out via %s.\n\nBest regards,\nMafalia Teranga Network",
			partner.FullName(), withdrawal.Reference, withdrawal.Amount, withdrawal.Method)
	}
	sendEmail(partner.Email, subject, body)
}
