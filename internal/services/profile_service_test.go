package services

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirim-labs/invoice-service/internal/models"
	"github.com/kirim-labs/invoice-service/internal/storage"
)

func newTestServices(t *testing.T) (*DocumentService, *ProfileService) {
	t.Helper()
	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "state.json"), newTestLogger())
	require.NoError(t, err)
	return NewDocumentService(store, newTestLogger()), NewProfileService(store, newTestLogger())
}

func TestProfileRoundTrip(t *testing.T) {
	_, svc := newTestServices(t)

	profile, err := svc.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, &models.BusinessProfile{}, profile)

	require.NoError(t, svc.SaveProfile(&models.BusinessProfile{Name: "Studio Pixel", Email: "hello@studiopixel.id"}))

	profile, err = svc.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "Studio Pixel", profile.Name)
}

func TestSaveCustomerAssignsID(t *testing.T) {
	_, svc := newTestServices(t)

	saved, err := svc.SaveCustomer(&models.CustomerInfo{Name: "Budi"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	saved.Name = "Budi Santoso"
	updated, err := svc.SaveCustomer(saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)

	customers, err := svc.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Budi Santoso", customers[0].Name)
}

func TestDashboardAggregates(t *testing.T) {
	docs, svc := newTestServices(t)

	inv1, err := docs.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)
	_, err = docs.Create(models.DocumentTypeQuotation)
	require.NoError(t, err)

	items := []models.LineItem{{ID: "a", Name: "Design", Quantity: 1, Price: 100000}}
	paid := models.DocumentStatusPaid
	_, err = docs.Update(inv1.ID, &models.UpdateDocumentRequest{Items: &items, Status: &paid})
	require.NoError(t, err)

	inv2, err := docs.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)
	_, err = docs.Update(inv2.ID, &models.UpdateDocumentRequest{Items: &items})
	require.NoError(t, err)

	stats, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.InvoiceCount)
	assert.Equal(t, 1, stats.QuotationCount)
	assert.Equal(t, 200000.0, stats.TotalValue)
	assert.Equal(t, 100000.0, stats.PaidValue)
}

func TestExportImportStateRoundTrip(t *testing.T) {
	docs, svc := newTestServices(t)

	_, err := docs.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)
	require.NoError(t, svc.SaveProfile(&models.BusinessProfile{Name: "Studio Pixel"}))

	exported, err := svc.ExportState()
	require.NoError(t, err)

	var state models.AppState
	require.NoError(t, json.Unmarshal(exported, &state))
	assert.Len(t, state.Documents, 1)

	// Import into a fresh store.
	otherDocs, other := newTestServices(t)
	require.NoError(t, other.ImportState(exported))

	listed, err := otherDocs.List()
	require.NoError(t, err)
	assert.Len(t, listed, 1)
	profile, err := other.GetProfile()
	require.NoError(t, err)
	assert.Equal(t, "Studio Pixel", profile.Name)
}

func TestImportStateRejectsMalformedPayload(t *testing.T) {
	docs, svc := newTestServices(t)
	_, err := docs.Create(models.DocumentTypeInvoice)
	require.NoError(t, err)

	assert.Error(t, svc.ImportState([]byte("{broken")))

	// The existing state is left alone.
	listed, err := docs.List()
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
