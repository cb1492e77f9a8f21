package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kirim-labs/invoice-service/internal/models"
	"github.com/kirim-labs/invoice-service/internal/pricing"
	"github.com/kirim-labs/invoice-service/internal/storage"
)

// ErrDocumentNotFound is returned when a document id is unknown.
var ErrDocumentNotFound = fmt.Errorf("document not found")

// DocumentService owns the document lifecycle: creation, mutation with
// totals recomputation, duplication, conversion and deletion. Every
// mutation is persisted immediately; there is no separate save step. The
// mutex serializes all state access, mirroring the single logical thread
// the application assumes.
type DocumentService struct {
	store  storage.Store
	logger *logrus.Logger
	mu     sync.Mutex
}

// NewDocumentService creates a new instance of the service.
func NewDocumentService(store storage.Store, logger *logrus.Logger) *DocumentService {
	return &DocumentService{store: store, logger: logger}
}

// Create builds a fresh document of the given type with factory defaults
// and an assigned document number, persists it and returns it.
func (s *DocumentService) Create(docType models.DocumentType) (*models.Document, error) {
	if !docType.Valid() {
		return nil, fmt.Errorf("invalid document type: %s", docType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading state: %w", err)
	}

	doc := models.NewDocument(docType)
	doc.Number = nextDocumentNumber(state, docType)
	pricing.Apply(doc)

	state.UpsertDocument(*doc)
	if err := s.store.Save(state); err != nil {
		return nil, fmt.Errorf("error saving state: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"document_id":     doc.ID,
		"document_type":   doc.Type,
		"document_number": doc.Number,
	}).Info("Document created")

	return doc, nil
}

// List returns all documents, most recently updated first.
func (s *DocumentService) List() ([]models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading state: %w", err)
	}

	docs := make([]models.Document, len(state.Documents))
	copy(docs, state.Documents)
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
	})
	return docs, nil
}

// Get returns the document with the given id.
func (s *DocumentService) Get(id string) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading state: %w", err)
	}

	i := state.FindDocument(id)
	if i < 0 {
		return nil, ErrDocumentNotFound
	}
	doc := state.Documents[i]
	return &doc, nil
}

// Update applies a partial update to a document. Derived totals are
// recomputed from scratch, updated_at advances, created_at is untouched,
// and the result is persisted before returning. An items update that
// empties the list is replaced by a single fresh empty item: a document
// never has zero line items.
func (s *DocumentService) Update(id string, req *models.UpdateDocumentRequest) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading state: %w", err)
	}

	i := state.FindDocument(id)
	if i < 0 {
		return nil, ErrDocumentNotFound
	}

	doc := state.Documents[i]
	applyUpdate(&doc, req)
	pricing.Apply(&doc)
	doc.UpdatedAt = time.Now()

	state.Documents[i] = doc
	if err := s.store.Save(state); err != nil {
		return nil, fmt.Errorf("error saving state: %w", err)
	}

	return &doc, nil
}

// Delete removes a document from the store. No soft delete, no history.
func (s *DocumentService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("error loading state: %w", err)
	}

	if !state.RemoveDocument(id) {
		return ErrDocumentNotFound
	}
	if err := s.store.Save(state); err != nil {
		return fmt.Errorf("error saving state: %w", err)
	}

	s.logger.WithField("document_id", id).Info("Document deleted")
	return nil
}

// Duplicate copies a document under a new id with a "-COPY" number
// suffix, draft status and fresh timestamps.
func (s *DocumentService) Duplicate(id string) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading state: %w", err)
	}

	i := state.FindDocument(id)
	if i < 0 {
		return nil, ErrDocumentNotFound
	}

	now := time.Now()
	copyDoc := state.Documents[i]
	copyDoc.ID = uuid.NewString()
	copyDoc.Number = copyDoc.Number + "-COPY"
	copyDoc.Status = models.DocumentStatusDraft
	copyDoc.Items = cloneItems(state.Documents[i].Items)
	copyDoc.CreatedAt = now
	copyDoc.UpdatedAt = now

	state.UpsertDocument(copyDoc)
	if err := s.store.Save(state); err != nil {
		return nil, fmt.Errorf("error saving state: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"source_id":   id,
		"document_id": copyDoc.ID,
	}).Info("Document duplicated")

	return &copyDoc, nil
}

// Convert turns a quotation into a new invoice: fresh id, a new number
// with the invoice prefix, draft status and fresh timestamps. Items,
// customer and template settings are preserved. The source quotation is
// kept as is.
func (s *DocumentService) Convert(id string) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading state: %w", err)
	}

	i := state.FindDocument(id)
	if i < 0 {
		return nil, ErrDocumentNotFound
	}
	if state.Documents[i].Type != models.DocumentTypeQuotation {
		return nil, fmt.Errorf("only quotations can be converted to invoices")
	}

	now := time.Now()
	invoice := state.Documents[i]
	invoice.ID = uuid.NewString()
	invoice.Type = models.DocumentTypeInvoice
	invoice.Number = nextDocumentNumber(state, models.DocumentTypeInvoice)
	invoice.Status = models.DocumentStatusDraft
	invoice.Items = cloneItems(state.Documents[i].Items)
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	state.UpsertDocument(invoice)
	if err := s.store.Save(state); err != nil {
		return nil, fmt.Errorf("error saving state: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"quotation_id":    id,
		"invoice_id":      invoice.ID,
		"document_number": invoice.Number,
	}).Info("Quotation converted to invoice")

	return &invoice, nil
}

// nextDocumentNumber assigns PREFIX-YEAR-NNNN, counting existing
// documents of the type. The sequence is advisory: deleting and
// recreating documents can reuse a number.
func nextDocumentNumber(state *models.AppState, docType models.DocumentType) string {
	count := 0
	for i := range state.Documents {
		if state.Documents[i].Type == docType {
			count++
		}
	}
	return fmt.Sprintf("%s-%d-%04d", docType.NumberPrefix(), time.Now().Year(), count+1)
}

// applyUpdate copies the non-nil fields of req onto doc.
func applyUpdate(doc *models.Document, req *models.UpdateDocumentRequest) {
	if req.Number != nil {
		doc.Number = *req.Number
	}
	if req.Status != nil {
		doc.Status = *req.Status
	}
	if req.Customer != nil {
		doc.Customer = *req.Customer
	}
	if req.Items != nil {
		items := cloneItems(*req.Items)
		if len(items) == 0 {
			items = []models.LineItem{models.NewLineItem()}
		}
		doc.Items = items
	}
	if req.IssueDate != nil {
		doc.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		doc.DueDate = *req.DueDate
	}
	if req.Discount != nil {
		doc.Discount = *req.Discount
	}
	if req.DiscountType != nil {
		doc.DiscountType = *req.DiscountType
	}
	if req.TaxEnabled != nil {
		doc.TaxEnabled = *req.TaxEnabled
	}
	if req.TaxRate != nil {
		doc.TaxRate = *req.TaxRate
	}
	if req.AdditionalFee != nil {
		doc.AdditionalFee = *req.AdditionalFee
	}
	if req.Notes != nil {
		doc.Notes = *req.Notes
	}
	if req.Terms != nil {
		doc.Terms = *req.Terms
	}
	if req.Template != nil {
		doc.Template = *req.Template
	}
	if req.AccentColor != nil {
		doc.AccentColor = *req.AccentColor
	}
	if req.Language != nil {
		doc.Language = *req.Language
	}
}

func cloneItems(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, len(items))
	copy(out, items)
	return out
}
