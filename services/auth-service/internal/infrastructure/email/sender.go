package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const sendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

type EmailSender struct {
	apiKey      string
	senderEmail string
	senderName  string
	frontend    string
	endpoint    string
	client      *http.Client
}

func NewEmailSender(apiKey, senderEmail, frontend string) *EmailSender {
	return &EmailSender{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  "Strong Foundations",
		frontend:    frontend,
		endpoint:    sendGridEndpoint,
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

// SendGrid request format
type sgEmail struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
type sgPersonalization struct {
	To []sgEmail `json:"to"`
}
type sgRequest struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgEmail             `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

const layout = `<html>
<body style="font-family: Arial, sans-serif; background-color: #f5f1ea; color: #2b2b2b;">
  <div style="max-width: 600px; margin: 40px auto; background: #ffffff; padding: 30px; border-radius: 12px; text-align: center;">
    <h3>%s</h3>
    <p>%s</p>
    <a href="%s" style="display: inline-block; margin: 24px 0; padding: 14px 28px; background: #6b4f2c; color: #ffffff; text-decoration: none; border-radius: 6px;">%s</a>
    <p style="font-size: 12px; color: #888888;">%s</p>
  </div>
</body>
</html>`

func (s *EmailSender) SendInvite(ctx context.Context, toEmail, token string) error {
	link := fmt.Sprintf("%s/auth?invite=%s", s.frontend, url.QueryEscape(token))
	html := fmt.Sprintf(layout,
		"You're invited to Strong Foundations",
		"You have been invited to join the Strong Foundations course. The invitation is valid for seven days.",
		link,
		"Create your account",
		"If you were not expecting this invitation you can ignore this e-mail.",
	)
	return s.send(ctx, toEmail, "Your Strong Foundations invitation", html)
}

func (s *EmailSender) SendResetEmail(ctx context.Context, toEmail, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.frontend, url.QueryEscape(token))
	html := fmt.Sprintf(layout,
		"Reset your password",
		"You asked to reset your password. Use the button below to choose a new one.",
		link,
		"Reset password",
		"If you did not request a reset, ignore this e-mail.",
	)
	return s.send(ctx, toEmail, "Reset your Strong Foundations password", html)
}

func (s *EmailSender) send(ctx context.Context, toEmail, subject, html string) error {
	body := sgRequest{
		Personalizations: []sgPersonalization{{To: []sgEmail{{Email: toEmail}}}},
		From:             sgEmail{Email: s.senderEmail, Name: s.senderName},
		Subject:          subject,
		Content:          []sgContent{{Type: "text/html", Value: html}},
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// SendGrid answers 202 on success
	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("sendgrid error: status=%d body=%s", resp.StatusCode, respBody)
	}
	return nil
}
