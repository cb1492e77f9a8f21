package services

import (
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirim-labs/invoice-service/internal/models"
	"github.com/kirim-labs/invoice-service/internal/storage"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestDocumentService(t *testing.T) *DocumentService {
	t.Helper()
	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "state.json"), newTestLogger())
	require.NoError(t, err)
	return NewDocumentService(store, newTestLogger())
}

func TestCreateInvoiceDefaults(t *testing.T) {
	svc := newTestDocumentService(t)

	doc, err := svc.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, models.DocumentTypeInvoice, doc.Type)
	assert.Equal(t, models.DocumentStatusDraft, doc.Status)
	assert.Equal(t, models.TemplateModern, doc.Template)
	assert.Equal(t, "#10b981", doc.AccentColor)
	assert.Equal(t, "id", doc.Language)
	assert.Equal(t, 11.0, doc.TaxRate)
	assert.False(t, doc.TaxEnabled)
	assert.Equal(t, models.DiscountTypePercentage, doc.DiscountType)
	assert.Equal(t, "Pembayaran jatuh tempo dalam 30 hari.", doc.Terms)

	require.Len(t, doc.Items, 1)
	assert.Equal(t, 1.0, doc.Items[0].Quantity)
	assert.Equal(t, 0.0, doc.Items[0].Price)

	issue, err := time.Parse(models.DateLayout, doc.IssueDate)
	require.NoError(t, err)
	due, err := time.Parse(models.DateLayout, doc.DueDate)
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, due.Sub(issue))
}

func TestCreateNumberingPerType(t *testing.T) {
	svc := newTestDocumentService(t)
	year := time.Now().Year()

	inv1, err := svc.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)
	inv2, err := svc.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)
	quo1, err := svc.Create(models.DocumentTypeQuotation)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("INV-%d-0001", year), inv1.Number)
	assert.Equal(t, fmt.Sprintf("INV-%d-0002", year), inv2.Number)
	assert.Equal(t, fmt.Sprintf("QUO-%d-0001", year), quo1.Number)
}

func TestCreateInvalidType(t *testing.T) {
	svc := newTestDocumentService(t)

	_, err := svc.Create(models.DocumentType("receipt"))
	assert.Error(t, err)
}

func TestGetUnknownID(t *testing.T) {
	svc := newTestDocumentService(t)

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestUpdateRecomputesTotals(t *testing.T) {
	svc := newTestDocumentService(t)
	doc, err := svc.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)

	items := []models.LineItem{
		{ID: "a", Name: "Design", Quantity: 2, Price: 50000},
	}
	taxEnabled := true
	updated, err := svc.Update(doc.ID, &models.UpdateDocumentRequest{
		Items:      &items,
		TaxEnabled: &taxEnabled,
	})
	require.NoError(t, err)

	assert.Equal(t, 100000.0, updated.Subtotal)
	assert.Equal(t, 111000.0, updated.Total)
}

func TestUpdateTimestamps(t *testing.T) {
	svc := newTestDocumentService(t)
	doc, err := svc.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	notes := "updated"
	updated, err := svc.Update(doc.ID, &models.UpdateDocumentRequest{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, doc.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.True(t, updated.UpdatedAt.After(doc.UpdatedAt))
}

func TestUpdateEmptyItemsFloor(t *testing.T) {
	svc := newTestDocumentService(t)
	doc, err := svc.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)

	empty := []models.LineItem{}
	updated, err := svc.Update(doc.ID, &models.UpdateDocumentRequest{Items: &empty})
	require.NoError(t, err)

	// A document never has zero line items.
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 1.0, updated.Items[0].Quantity)
	assert.Equal(t, 0.0, updated.Items[0].Price)
	assert.NotEmpty(t, updated.Items[0].ID)
}

func TestDelete(t *testing.T) {
	svc := newTestDocumentService(t)
	doc, err := svc.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(doc.ID))

	_, err = svc.Get(doc.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.ErrorIs(t, svc.Delete(doc.ID), ErrDocumentNotFound)
}

func TestDuplicate(t *testing.T) {
	svc := newTestDocumentService(t)
	doc, err := svc.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)

	sent := models.DocumentStatusSent
	_, err = svc.Update(doc.ID, &models.UpdateDocumentRequest{Status: &sent})
	require.NoError(t, err)

	dup, err := svc.Duplicate(doc.ID)
	require.NoError(t, err)

	assert.NotEqual(t, doc.ID, dup.ID)
	assert.Equal(t, doc.Number+"-COPY", dup.Number)
	assert.Equal(t, models.DocumentStatusDraft, dup.Status)

	// Both documents remain listed.
	docs, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestConvertQuotationToInvoice(t *testing.T) {
	svc := newTestDocumentService(t)
	quo, err := svc.Create(models.DocumentTypeQuotation)
	require.NoError(t, err)

	items := []models.LineItem{{ID: "a", Name: "Branding", Quantity: 1, Price: 750000}}
	template := models.TemplateElegant
	_, err = svc.Update(quo.ID, &models.UpdateDocumentRequest{Items: &items, Template: &template})
	require.NoError(t, err)

	inv, err := svc.Convert(quo.ID)
	require.NoError(t, err)

	assert.NotEqual(t, quo.ID, inv.ID)
	assert.Equal(t, models.DocumentTypeInvoice, inv.Type)
	assert.Equal(t, fmt.Sprintf("INV-%d-0001", time.Now().Year()), inv.Number)
	assert.Equal(t, models.DocumentStatusDraft, inv.Status)
	assert.Equal(t, models.TemplateElegant, inv.Template)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "Branding", inv.Items[0].Name)

	// The source quotation stays untouched.
	source, err := svc.Get(quo.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DocumentTypeQuotation, source.Type)
}

func TestConvertRejectsInvoice(t *testing.T) {
	svc := newTestDocumentService(t)
	inv, err := svc.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)

	_, err = svc.Convert(inv.ID)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDocumentNotFound)
}

func TestListSortsByUpdatedAtDesc(t *testing.T) {
	svc := newTestDocumentService(t)
	first, err := svc.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)
	second, err := svc.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	notes := "touched"
	_, err = svc.Update(first.ID, &models.UpdateDocumentRequest{Notes: &notes})
	require.NoError(t, err)

	docs, err := svc.List()
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, first.ID, docs[0].ID)
	assert.Equal(t, second.ID, docs[1].ID)
}
