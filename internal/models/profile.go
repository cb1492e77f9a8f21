package models

// BusinessProfile is the issuer identity shared across all documents.
type BusinessProfile struct {
	Name          string `json:"name"`
	Logo          string `json:"logo,omitempty"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	AccountName   string `json:"account_name,omitempty"`
}

// CustomerInfo identifies the recipient of a document.
type CustomerInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// AppState is the whole persisted state of the application, stored as one
// serialized record under a single well-known key.
type AppState struct {
	BusinessProfile BusinessProfile `json:"business_profile"`
	Customers       []CustomerInfo  `json:"customers"`
	Documents       []Document      `json:"documents"`
}

// NewAppState returns an empty default state.
func NewAppState() *AppState {
	return &AppState{
		Customers: []CustomerInfo{},
		Documents: []Document{},
	}
}

// FindDocument returns the index of the document with the given id, or -1.
func (s *AppState) FindDocument(id string) int {
	for i := range s.Documents {
		if s.Documents[i].ID == id {
			return i
		}
	}
	return -1
}

// UpsertDocument replaces the document with the same id or appends it.
func (s *AppState) UpsertDocument(doc Document) {
	if i := s.FindDocument(doc.ID); i >= 0 {
		s.Documents[i] = doc
		return
	}
	s.Documents = append(s.Documents, doc)
}

// RemoveDocument deletes the document with the given id. It reports
// whether a document was removed.
func (s *AppState) RemoveDocument(id string) bool {
	if i := s.FindDocument(id); i >= 0 {
		s.Documents = append(s.Documents[:i], s.Documents[i+1:]...)
		return true
	}
	return false
}

// UpsertCustomer replaces the customer with the same id or appends it.
func (s *AppState) UpsertCustomer(customer CustomerInfo) {
	for i := range s.Customers {
		if s.Customers[i].ID == customer.ID {
			s.Customers[i] = customer
			return
		}
	}
	s.Customers = append(s.Customers, customer)
}
