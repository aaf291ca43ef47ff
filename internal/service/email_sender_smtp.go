package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"internlink/internal/entity"

	"gopkg.in/gomail.v2"
)

// SMTPEmailSender delivers transactional mail over SMTP. Link targets point
// at the frontend, which relays the token back to the API.
type SMTPEmailSender struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	FromName    string
	FrontendURL string
}

func NewSMTPEmailSender(host string, port int, username, password, from, fromName, frontendURL string) *SMTPEmailSender {
	return &SMTPEmailSender{
		Host:        host,
		Port:        port,
		Username:    username,
		Password:    password,
		From:        from,
		FromName:    fromName,
		FrontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

func (s *SMTPEmailSender) SendWelcomeEmail(ctx context.Context, email string, name string, role entity.UserRole, verificationToken string) error {
	subject := "Welcome to InternLink"
	greeting := fmt.Sprintf("<p>Hi %s,</p><p>Your %s account is ready.</p>", name, role)
	text := fmt.Sprintf("Hi %s, your %s account is ready.", name, role)

	if verificationToken != "" {
		link := fmt.Sprintf("%s/verify-email?token=%s", s.FrontendURL, verificationToken)
		greeting += fmt.Sprintf("<p><a href=%q>Click here to verify your email</a></p>", link)
		text += fmt.Sprintf(" Verify your email: %s", link)
	}

	return s.send(ctx, email, subject, greeting, text)
}

func (s *SMTPEmailSender) SendPasswordResetEmail(ctx context.Context, email string, name string, resetToken string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.FrontendURL, resetToken)
	subject := "Password Reset Request"
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>You requested a password reset.</p><p><a href=%q>Reset Password</a></p><p>This link expires in 10 minutes. If you didn't request this, ignore this email.</p>",
		name, link,
	)
	text := fmt.Sprintf("Hi %s, reset your password: %s (expires in 10 minutes)", name, link)
	return s.send(ctx, email, subject, html, text)
}

func (s *SMTPEmailSender) send(ctx context.Context, to string, subject string, html string, text string) error {
	if s.Host == "" {
		return errors.New("email sender not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", message.FormatAddress(s.From, s.FromName))
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", text)
	message.AddAlternative("text/html", html)

	dialer := gomail.NewDialer(s.Host, s.Port, s.Username, s.Password)
	return dialer.DialAndSend(message)
}
