// Package i18n holds the bilingual string tables and locale formatting
// used in rendered documents and outbound messages.
package i18n

import (
	"golang.org/x/text/language"

	"github.com/kirim-labs/invoice-service/internal/models"
)

// Language is a supported UI language tag.
type Language string

const (
	LanguageID Language = "id"
	LanguageEN Language = "en"
)

// Translations is the set of fixed strings a document rendering needs.
type Translations struct {
	Invoice   string
	Quotation string

	BillTo         string
	IssueDate      string
	DueDate        string
	ValidUntil     string
	Item           string
	Qty            string
	Price          string
	Subtotal       string
	Discount       string
	Tax            string
	AdditionalFee  string
	Total          string
	PaymentDetails string
	Bank           string
	Account        string
	AccountName    string
	Notes          string
	TermsConditions string

	WhatsAppGreeting string
	WhatsAppDocType  string
	WhatsAppLink     string
	WhatsAppThanks   string
	EmailBody        string

	ThankYou string
}

var translations = map[Language]Translations{
	LanguageID: {
		Invoice:   "FAKTUR",
		Quotation: "PENAWARAN",

		BillTo:          "Tagihan Kepada",
		IssueDate:       "Tanggal Terbit",
		DueDate:         "Jatuh Tempo",
		ValidUntil:      "Berlaku Sampai",
		Item:            "Item",
		Qty:             "Jml",
		Price:           "Harga",
		Subtotal:        "Subtotal",
		Discount:        "Diskon",
		Tax:             "Pajak",
		AdditionalFee:   "Biaya Tambahan",
		Total:           "Total",
		PaymentDetails:  "Informasi Pembayaran",
		Bank:            "Bank",
		Account:         "No. Rekening",
		AccountName:     "Atas Nama",
		Notes:           "Catatan",
		TermsConditions: "Syarat & Ketentuan",

		WhatsAppGreeting: "Halo",
		WhatsAppDocType:  "Berikut",
		WhatsAppLink:     "Link untuk melihat & download:",
		WhatsAppThanks:   "Terima kasih",
		EmailBody:        "Silakan lihat dokumen terlampir.",

		ThankYou: "Terima kasih atas kepercayaan Anda!",
	},
	LanguageEN: {
		Invoice:   "INVOICE",
		Quotation: "QUOTATION",

		BillTo:          "Bill To",
		IssueDate:       "Issue Date",
		DueDate:         "Due Date",
		ValidUntil:      "Valid Until",
		Item:            "Item",
		Qty:             "Qty",
		Price:           "Price",
		Subtotal:        "Subtotal",
		Discount:        "Discount",
		Tax:             "Tax",
		AdditionalFee:   "Additional Fee",
		Total:           "Total",
		PaymentDetails:  "Payment Details",
		Bank:            "Bank",
		Account:         "Account",
		AccountName:     "Account Name",
		Notes:           "Notes",
		TermsConditions: "Terms & Conditions",

		WhatsAppGreeting: "Hello",
		WhatsAppDocType:  "Here is your",
		WhatsAppLink:     "View and download here:",
		WhatsAppThanks:   "Thank you",
		EmailBody:        "Please find the attached document.",

		ThankYou: "Thank you for your business!",
	},
}

// T returns the string table for lang, defaulting to Indonesian for
// unknown tags.
func T(lang Language) Translations {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations[LanguageID]
}

// ForDocument returns the string table matching the document language.
func ForDocument(doc *models.Document) Translations {
	return T(Language(doc.Language))
}

// Title returns the localized document title (FAKTUR / INVOICE etc).
func Title(doc *models.Document) string {
	t := ForDocument(doc)
	if doc.Type == models.DocumentTypeQuotation {
		return t.Quotation
	}
	return t.Invoice
}

func langTag(lang Language) language.Tag {
	if lang == LanguageEN {
		return language.English
	}
	return language.Indonesian
}
