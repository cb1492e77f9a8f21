// Package email sends documents to customers through the Resend API.
package email

import (
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
	"github.com/sirupsen/logrus"

	"github.com/kirim-labs/invoice-service/internal/i18n"
	"github.com/kirim-labs/invoice-service/internal/models"
	"github.com/kirim-labs/invoice-service/internal/sharing"
)

// ResendService delivers share links by email.
type ResendService struct {
	client    *resend.Client
	fromEmail string
	baseURL   string
	logger    *logrus.Logger
}

// NewResendService creates the service. apiKey must be non-empty; the
// caller decides what to do when no key is configured.
func NewResendService(apiKey, fromEmail, baseURL string, logger *logrus.Logger) *ResendService {
	return &ResendService{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// SendDocument emails the customer a localized message with the share
// link for the document. The customer must have an email address.
func (s *ResendService) SendDocument(doc *models.Document, profile *models.BusinessProfile) (string, error) {
	if doc.Customer.Email == "" {
		return "", fmt.Errorf("customer has no email address")
	}

	shareLink, err := sharing.ShareLink(doc, s.baseURL)
	if err != nil {
		return "", fmt.Errorf("error building share link: %w", err)
	}

	t := i18n.ForDocument(doc)
	lang := i18n.Language(doc.Language)
	subject := fmt.Sprintf("%s %s", i18n.Title(doc), doc.Number)

	html := s.buildHTML(doc, profile, t, lang, shareLink)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", senderName(profile), s.fromEmail),
		To:      []string{doc.Customer.Email},
		Subject: subject,
		Html:    html,
	}

	result, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.WithError(err).WithField("document_id", doc.ID).Error("Error sending email")
		return "", fmt.Errorf("error sending email: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"document_id": doc.ID,
		"email_id":    result.Id,
		"to":          doc.Customer.Email,
	}).Info("Document email sent")

	return result.Id, nil
}

func (s *ResendService) buildHTML(doc *models.Document, profile *models.BusinessProfile, t i18n.Translations, lang i18n.Language, shareLink string) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 560px; margin: 0 auto; color: #1a1a1a;">`)
	b.WriteString(fmt.Sprintf(`<h2 style="color: %s;">%s %s</h2>`, doc.AccentColor, i18n.Title(doc), doc.Number))
	b.WriteString(fmt.Sprintf(`<p>%s %s,</p>`, t.WhatsAppGreeting, doc.Customer.Name))
	b.WriteString(fmt.Sprintf(`<p>%s</p>`, t.EmailBody))
	b.WriteString(`<table style="width: 100%; border-collapse: collapse; margin: 16px 0;">`)
	b.WriteString(fmt.Sprintf(`<tr><td style="padding: 6px 0; color: #6b7280;">No</td><td style="text-align: right;">%s</td></tr>`, doc.Number))
	b.WriteString(fmt.Sprintf(`<tr><td style="padding: 6px 0; color: #6b7280;">%s</td><td style="text-align: right; font-weight: bold;">%s</td></tr>`, t.Total, i18n.FormatCurrency(doc.Total, lang)))
	b.WriteString(`</table>`)
	b.WriteString(fmt.Sprintf(`<p><a href="%s" style="display: inline-block; padding: 10px 20px; background: %s; color: #ffffff; text-decoration: none; border-radius: 6px;">%s</a></p>`, shareLink, doc.AccentColor, t.WhatsAppLink))
	b.WriteString(fmt.Sprintf(`<p>%s</p>`, t.WhatsAppThanks))
	if profile.Name != "" {
		b.WriteString(fmt.Sprintf(`<p style="color: #6b7280; font-size: 13px;">%s</p>`, profile.Name))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func senderName(profile *models.BusinessProfile) string {
	if profile.Name != "" {
		return profile.Name
	}
	return "Invoice Service"
}
