package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirim-labs/invoice-service/internal/models"
)

func pdfFixture() (*models.Document, *models.BusinessProfile) {
	doc := models.NewDocument(models.DocumentTypeInvoice)
	doc.Number = "INV-2026-0001"
	doc.Customer = models.CustomerInfo{
		Name:    "Budi Santoso",
		Company: "PT Maju Jaya",
		Email:   "budi@example.com",
		Address: "Jl. Sudirman No. 1, Jakarta",
	}
	doc.Items = []models.LineItem{
		{ID: "a", Name: "Logo design", Description: "3 concepts", Quantity: 1, Price: 500000},
		{ID: "b", Name: "Business cards", Quantity: 2, Price: 150000},
	}
	doc.Discount = 10
	doc.TaxEnabled = true
	doc.AdditionalFee = 25000
	doc.Notes = "Sumber file dikirim setelah pelunasan."
	doc.Subtotal = 800000
	doc.Total = 824200

	profile := &models.BusinessProfile{
		Name:          "Studio Pixel",
		Email:         "hello@studiopixel.id",
		Phone:         "+62 812 0000 0000",
		Address:       "Bandung",
		BankName:      "BCA",
		AccountNumber: "1234567890",
		AccountName:   "Studio Pixel",
	}
	return doc, profile
}

func TestGeneratePDFAllTemplates(t *testing.T) {
	gen := NewPDFGenerator(newTestLogger())
	doc, profile := pdfFixture()

	for _, template := range models.Templates {
		doc.Template = template

		pdfBytes, err := gen.GeneratePDF(doc, profile)
		require.NoError(t, err, "template %s", template)
		assert.Greater(t, len(pdfBytes), 500, "template %s", template)
		assert.Equal(t, "%PDF", string(pdfBytes[:4]), "template %s", template)
	}
}

func TestGeneratePDFEnglishQuotation(t *testing.T) {
	gen := NewPDFGenerator(newTestLogger())
	doc, profile := pdfFixture()
	doc.Type = models.DocumentTypeQuotation
	doc.Language = "en"

	pdfBytes, err := gen.GeneratePDF(doc, profile)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGeneratePDFMalformedAccent(t *testing.T) {
	gen := NewPDFGenerator(newTestLogger())
	doc, profile := pdfFixture()
	doc.AccentColor = "not-a-color"

	pdfBytes, err := gen.GeneratePDF(doc, profile)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
