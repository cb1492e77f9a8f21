package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType is the kind of billing document.
type DocumentType string

const (
	DocumentTypeInvoice   DocumentType = "invoice"
	DocumentTypeQuotation DocumentType = "quotation"
)

// Valid reports whether t is a known document type.
func (t DocumentType) Valid() bool {
	return t == DocumentTypeInvoice || t == DocumentTypeQuotation
}

// NumberPrefix returns the document-number prefix for the type.
func (t DocumentType) NumberPrefix() string {
	if t == DocumentTypeQuotation {
		return "QUO"
	}
	return "INV"
}

// DocumentStatus is the workflow state of a document. Advisory only; the
// service does not enforce transitions between states.
type DocumentStatus string

const (
	DocumentStatusDraft    DocumentStatus = "draft"
	DocumentStatusSent     DocumentStatus = "sent"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusPaid     DocumentStatus = "paid"
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusOverdue  DocumentStatus = "overdue"
)

// DiscountType selects how Document.Discount is interpreted.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// TemplateType names one of the built-in PDF layouts.
type TemplateType string

const (
	TemplateMinimal   TemplateType = "minimal"
	TemplateModern    TemplateType = "modern"
	TemplateCreative  TemplateType = "creative"
	TemplateCorporate TemplateType = "corporate"
	TemplateElegant   TemplateType = "elegant"
	TemplateBold      TemplateType = "bold"
)

// Templates lists every available template.
var Templates = []TemplateType{
	TemplateMinimal,
	TemplateModern,
	TemplateCreative,
	TemplateCorporate,
	TemplateElegant,
	TemplateBold,
}

// Default factory values. These mirror what a freshly opened editor shows.
const (
	DefaultTaxRate     = 11.0
	DefaultAccentColor = "#10b981"
	DefaultTerms       = "Pembayaran jatuh tempo dalam 30 hari."
	DueDateOffsetDays  = 30
	DateLayout         = "2006-01-02"
)

// LineItem is one billable row of a document.
type LineItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// NewLineItem returns an empty row with quantity 1 and price 0.
func NewLineItem() LineItem {
	return LineItem{ID: uuid.NewString(), Quantity: 1, Price: 0}
}

// Document is a single invoice or quotation. Subtotal and Total are
// derived from the other pricing fields and recomputed by the document
// service after every mutation; they are never set independently.
type Document struct {
	ID     string         `json:"id"`
	Type   DocumentType   `json:"type"`
	Number string         `json:"number"`
	Status DocumentStatus `json:"status"`

	Customer CustomerInfo `json:"customer"`
	Items    []LineItem   `json:"items"`

	IssueDate string `json:"issue_date"`
	DueDate   string `json:"due_date"`

	Subtotal      float64      `json:"subtotal"`
	Discount      float64      `json:"discount"`
	DiscountType  DiscountType `json:"discount_type"`
	TaxEnabled    bool         `json:"tax_enabled"`
	TaxRate       float64      `json:"tax_rate"`
	AdditionalFee float64      `json:"additional_fee"`
	Total         float64      `json:"total"`

	Notes string `json:"notes"`
	Terms string `json:"terms"`

	Template    TemplateType `json:"template"`
	AccentColor string       `json:"accent_color"`
	Language    string       `json:"language"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDocument builds an empty document of the given type with factory
// defaults: one blank item, issue date today, due date +30 days, tax
// disabled at the default rate, modern template. Each call produces a
// fresh id and timestamps. It does not touch persistence.
func NewDocument(docType DocumentType) *Document {
	now := time.Now()
	return &Document{
		ID:           uuid.NewString(),
		Type:         docType,
		Status:       DocumentStatusDraft,
		Customer:     CustomerInfo{},
		Items:        []LineItem{NewLineItem()},
		IssueDate:    now.Format(DateLayout),
		DueDate:      now.AddDate(0, 0, DueDateOffsetDays).Format(DateLayout),
		Discount:     0,
		DiscountType: DiscountTypePercentage,
		TaxEnabled:   false,
		TaxRate:      DefaultTaxRate,
		Template:     TemplateModern,
		AccentColor:  DefaultAccentColor,
		Language:     "id",
		Terms:        DefaultTerms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CreateDocumentRequest starts a new document of the given type.
type CreateDocumentRequest struct {
	Type DocumentType `json:"type" binding:"required,oneof=invoice quotation"`
}

// UpdateDocumentRequest is a partial update; nil fields are left alone.
// Subtotal and Total are absent on purpose: they are derived.
type UpdateDocumentRequest struct {
	Number        *string         `json:"number,omitempty"`
	Status        *DocumentStatus `json:"status,omitempty" binding:"omitempty,oneof=draft sent approved paid pending overdue"`
	Customer      *CustomerInfo   `json:"customer,omitempty"`
	Items         *[]LineItem     `json:"items,omitempty"`
	IssueDate     *string         `json:"issue_date,omitempty"`
	DueDate       *string         `json:"due_date,omitempty"`
	Discount      *float64        `json:"discount,omitempty"`
	DiscountType  *DiscountType   `json:"discount_type,omitempty" binding:"omitempty,oneof=percentage fixed"`
	TaxEnabled    *bool           `json:"tax_enabled,omitempty"`
	TaxRate       *float64        `json:"tax_rate,omitempty"`
	AdditionalFee *float64        `json:"additional_fee,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	Terms         *string         `json:"terms,omitempty"`
	Template      *TemplateType   `json:"template,omitempty" binding:"omitempty,oneof=minimal modern creative corporate elegant bold"`
	AccentColor   *string         `json:"accent_color,omitempty"`
	Language      *string         `json:"language,omitempty" binding:"omitempty,oneof=id en"`
}

// ShareResponse carries the outbound links for a document.
type ShareResponse struct {
	ShareLink   string `json:"share_link"`
	WhatsAppURL string `json:"whatsapp_url"`
	MailtoURL   string `json:"mailto_url"`
}

// EmailSendResponse reports the outcome of an email send.
type EmailSendResponse struct {
	Status string `json:"status"`
}

// DashboardResponse aggregates document stats for the dashboard view.
type DashboardResponse struct {
	InvoiceCount   int     `json:"invoice_count"`
	QuotationCount int     `json:"quotation_count"`
	TotalValue     float64 `json:"total_value"`
	PaidValue      float64 `json:"paid_value"`
}
