package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kirim-labs/invoice-service/internal/models"
	"github.com/kirim-labs/invoice-service/internal/storage"
)

// ProfileService maintains the business profile, the customer list and
// the whole-state export/import used for backups.
type ProfileService struct {
	store  storage.Store
	logger *logrus.Logger
	mu     sync.Mutex
}

// NewProfileService creates a new instance of the service.
func NewProfileService(store storage.Store, logger *logrus.Logger) *ProfileService {
	return &ProfileService{store: store, logger: logger}
}

// GetProfile returns the stored business profile.
func (s *ProfileService) GetProfile() (*models.BusinessProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading state: %w", err)
	}
	profile := state.BusinessProfile
	return &profile, nil
}

// SaveProfile replaces the business profile.
func (s *ProfileService) SaveProfile(profile *models.BusinessProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("error loading state: %w", err)
	}
	state.BusinessProfile = *profile
	if err := s.store.Save(state); err != nil {
		return fmt.Errorf("error saving state: %w", err)
	}
	return nil
}

// ListCustomers returns the saved customer list.
func (s *ProfileService) ListCustomers() ([]models.CustomerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading state: %w", err)
	}
	customers := make([]models.CustomerInfo, len(state.Customers))
	copy(customers, state.Customers)
	return customers, nil
}

// SaveCustomer upserts a customer by id, assigning a fresh id when
// missing, and returns the stored record.
func (s *ProfileService) SaveCustomer(customer *models.CustomerInfo) (*models.CustomerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading state: %w", err)
	}

	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	state.UpsertCustomer(*customer)
	if err := s.store.Save(state); err != nil {
		return nil, fmt.Errorf("error saving state: %w", err)
	}
	return customer, nil
}

// Dashboard aggregates counts and invoice values across all documents.
func (s *ProfileService) Dashboard() (*models.DashboardResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading state: %w", err)
	}

	resp := &models.DashboardResponse{}
	for i := range state.Documents {
		doc := &state.Documents[i]
		switch doc.Type {
		case models.DocumentTypeInvoice:
			resp.InvoiceCount++
			resp.TotalValue += doc.Total
			if doc.Status == models.DocumentStatusPaid {
				resp.PaidValue += doc.Total
			}
		case models.DocumentTypeQuotation:
			resp.QuotationCount++
		}
	}
	return resp, nil
}

// ExportState serializes the whole state as indented JSON.
func (s *ProfileService) ExportState() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading state: %w", err)
	}
	return json.MarshalIndent(state, "", "  ")
}

// ImportState replaces the whole state with the given JSON blob.
// Malformed input is rejected and the stored state is left unchanged.
func (s *ProfileService) ImportState(data []byte) error {
	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("invalid state payload: %w", err)
	}
	if state.Customers == nil {
		state.Customers = []models.CustomerInfo{}
	}
	if state.Documents == nil {
		state.Documents = []models.Document{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(&state); err != nil {
		return fmt.Errorf("error saving state: %w", err)
	}
	s.logger.WithField("documents", len(state.Documents)).Info("State imported")
	return nil
}
