// Package sharing encodes documents into share links and composes the
// WhatsApp and mailto messages that carry them. A share link embeds the
// full document snapshot, so the view route needs no stored state.
package sharing

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/kirim-labs/invoice-service/internal/i18n"
	"github.com/kirim-labs/invoice-service/internal/models"
)

// ErrInvalidPayload marks a share payload that cannot be decoded back
// into a document. Callers surface it as "document not found".
var ErrInvalidPayload = errors.New("invalid share payload")

// Encode serializes a document into a URL-safe share payload.
func Encode(doc *models.Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("error encoding document: %w", err)
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// Decode reverses Encode. Any malformed payload yields ErrInvalidPayload;
// it never panics on arbitrary input.
func Decode(payload string) (*models.Document, error) {
	data, err := base64.URLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidPayload
	}
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrInvalidPayload
	}
	return &doc, nil
}

// ShareLink returns the stateless view URL for a document.
func ShareLink(doc *models.Document, baseURL string) (string, error) {
	payload, err := Encode(doc)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/v1/view?data=%s", strings.TrimRight(baseURL, "/"), url.QueryEscape(payload)), nil
}

// WhatsAppLink builds a wa.me deep link to the customer's phone with the
// localized share message. Non-digits are stripped from the phone number.
func WhatsAppLink(doc *models.Document, baseURL string) (string, error) {
	shareLink, err := ShareLink(doc, baseURL)
	if err != nil {
		return "", err
	}

	t := i18n.ForDocument(doc)
	lang := i18n.Language(doc.Language)
	message := fmt.Sprintf("%s %s,\n\n%s %s:\nNo: %s\n%s: %s\n\n%s\n%s\n\n%s",
		t.WhatsAppGreeting, doc.Customer.Name,
		t.WhatsAppDocType, strings.ToLower(i18n.Title(doc)),
		doc.Number,
		t.Total, i18n.FormatCurrency(doc.Total, lang),
		t.WhatsAppLink,
		shareLink,
		t.WhatsAppThanks,
	)

	phone := digitsOnly(doc.Customer.Phone)
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message)), nil
}

// MailtoLink builds a mailto URL to the customer's email with a localized
// subject and body.
func MailtoLink(doc *models.Document, baseURL string) (string, error) {
	shareLink, err := ShareLink(doc, baseURL)
	if err != nil {
		return "", err
	}

	t := i18n.ForDocument(doc)
	lang := i18n.Language(doc.Language)
	subject := fmt.Sprintf("%s %s", i18n.Title(doc), doc.Number)
	body := fmt.Sprintf("%s %s,\n\n%s\n\nNo: %s\n%s: %s\n\n%s\n%s\n\n%s",
		t.WhatsAppGreeting, doc.Customer.Name,
		t.EmailBody,
		doc.Number,
		t.Total, i18n.FormatCurrency(doc.Total, lang),
		t.WhatsAppLink,
		shareLink,
		t.WhatsAppThanks,
	)

	values := url.Values{}
	values.Set("subject", subject)
	values.Set("body", body)
	return fmt.Sprintf("mailto:%s?%s", doc.Customer.Email, values.Encode()), nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
