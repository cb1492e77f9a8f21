package sharing

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirim-labs/invoice-service/internal/models"
)

const baseURL = "http://localhost:8080"

func sampleDocument() *models.Document {
	doc := models.NewDocument(models.DocumentTypeInvoice)
	doc.Number = "INV-2026-0001"
	doc.Customer = models.CustomerInfo{
		Name:  "Budi Santoso",
		Email: "budi@example.com",
		Phone: "+62 812-3456-7890",
	}
	doc.Items = []models.LineItem{{ID: "a", Name: "Logo design", Quantity: 1, Price: 500000}}
	doc.Subtotal = 500000
	doc.Total = 500000
	return doc
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := sampleDocument()

	payload, err := Encode(doc)
	require.NoError(t, err)

	decoded, err := Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, decoded.ID)
	assert.Equal(t, doc.Number, decoded.Number)
	assert.Equal(t, doc.Customer.Name, decoded.Customer.Name)
	require.Len(t, decoded.Items, 1)
	assert.Equal(t, 500000.0, decoded.Items[0].Price)
}

func TestDecodeInvalidPayload(t *testing.T) {
	for _, payload := range []string{
		"not base64 at all!!",
		"aGVsbG8=", // valid base64, not JSON
		"",
	} {
		_, err := Decode(payload)
		assert.ErrorIs(t, err, ErrInvalidPayload, "payload %q", payload)
	}
}

func TestShareLink(t *testing.T) {
	doc := sampleDocument()

	link, err := ShareLink(doc, baseURL+"/")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, baseURL+"/v1/view?data="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	decoded, err := Decode(u.Query().Get("data"))
	require.NoError(t, err)
	assert.Equal(t, doc.ID, decoded.ID)
}

func TestWhatsAppLinkStripsPhone(t *testing.T) {
	doc := sampleDocument()

	link, err := WhatsAppLink(doc, baseURL)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/6281234567890?text="))

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")
	assert.Contains(t, text, "Budi Santoso")
	assert.Contains(t, text, "INV-2026-0001")
	assert.Contains(t, text, "Rp 500.000")
}

func TestMailtoLink(t *testing.T) {
	doc := sampleDocument()
	doc.Language = "en"

	link, err := MailtoLink(doc, baseURL)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "mailto:budi@example.com?"))

	u, err := url.Parse(link)
	require.NoError(t, err)
	query, err := url.ParseQuery(u.RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "INVOICE INV-2026-0001", query.Get("subject"))
	assert.Contains(t, query.Get("body"), "Rp 500,000")
}
