// file: services/mail_service.go
package services

import (
	"fmt"
	"net/smtp"

	log "github.com/sirupsen/logrus"
)

const (
	smtpHost = "smtp.gmail.com"
	smtpPort = "587"
)

// SendMailFunc is the SMTP submission function; tests replace it.
var SendMailFunc = smtp.SendMail

// SendTestLinkEmail notifies an accepted student about their test link using
// the SMTP credentials stored in the contest settings.
func SendTestLinkEmail(username, appPassword, to, contestName, studentName, testLink string) error {
	subject := fmt.Sprintf("Your Coding Contest Link: %s", contestName)
	body := fmt.Sprintf(
		"Hello %s,\n\nCongratulations! Your application for %s has been accepted.\n\n"+
			"Please use the following link to access your test:\n%s\n\nGood luck!\nThe CodeFest Team",
		studentName, contestName, testLink)

	auth := smtp.PlainAuth("", username, appPassword, smtpHost)
	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	if err := SendMailFunc(smtpHost+":"+smtpPort, auth, username, []string{to}, msg); err != nil {
		log.Errorf("Failed to send email to %s: %v", to, err)
		return err
	}
	return nil
}
