package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"

	"github.com/kirim-labs/invoice-service/internal/i18n"
	"github.com/kirim-labs/invoice-service/internal/models"
	"github.com/kirim-labs/invoice-service/internal/pricing"
	"github.com/kirim-labs/invoice-service/internal/templates"
)

// PDFGenerator renders documents as A4 PDFs. Layout decisions come from
// the template style descriptor; all labels come from the document's
// language table.
type PDFGenerator struct {
	logger *logrus.Logger
}

// NewPDFGenerator creates a new instance of the generator.
func NewPDFGenerator(logger *logrus.Logger) *PDFGenerator {
	return &PDFGenerator{logger: logger}
}

const (
	pageLeft  = 15.0
	pageRight = 195.0
)

// GeneratePDF renders the document with the business profile header and
// returns the PDF bytes.
func (g *PDFGenerator) GeneratePDF(doc *models.Document, profile *models.BusinessProfile) ([]byte, error) {
	style := templates.StyleFor(doc.Template)
	accent := templates.ParseAccent(doc.AccentColor)
	t := i18n.ForDocument(doc)
	lang := i18n.Language(doc.Language)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageLeft, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	g.renderHeader(pdf, doc, profile, style, accent)
	g.renderParties(pdf, doc, style, t, lang)
	y := g.renderItems(pdf, doc, style, t, lang)
	y = g.renderTotals(pdf, doc, style, accent, t, lang, y)
	g.renderFooterSections(pdf, doc, profile, style, t, y)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error generating PDF: %w", err)
	}

	g.logger.WithFields(logrus.Fields{
		"document_id": doc.ID,
		"template":    doc.Template,
		"pdf_size":    buf.Len(),
	}).Info("Document PDF generated")

	return buf.Bytes(), nil
}

func (g *PDFGenerator) renderHeader(pdf *gofpdf.Fpdf, doc *models.Document, profile *models.BusinessProfile, style templates.Style, accent templates.RGB) {
	titleColor := templates.RGB{R: 26, G: 26, B: 26}

	if style.HeaderBand {
		pdf.SetFillColor(accent.R, accent.G, accent.B)
		pdf.Rect(0, 0, 210, 42, "F")
		titleColor = templates.RGB{R: 255, G: 255, B: 255}
	} else if style.AccentTitle {
		titleColor = accent
	}

	pdf.SetY(15)
	if style.AccentBar {
		pdf.SetFillColor(accent.R, accent.G, accent.B)
		pdf.Rect(pageLeft, 13, 22, 2.5, "F")
		pdf.SetY(19)
	}

	title := i18n.Title(doc)
	pdf.SetFont(style.FontFamily, style.TitleStyle, style.TitleSize)
	pdf.SetTextColor(titleColor.R, titleColor.G, titleColor.B)
	pdf.CellFormat(110, 12, title, "", 0, "L", false, 0, "")

	// Business identity, right aligned.
	if style.HeaderBand {
		pdf.SetTextColor(255, 255, 255)
	} else {
		pdf.SetTextColor(26, 26, 26)
	}
	pdf.SetFont(style.FontFamily, "B", 12)
	pdf.CellFormat(70, 6, profile.Name, "", 1, "R", false, 0, "")

	pdf.SetFont(style.FontFamily, "", 9)
	if !style.HeaderBand {
		pdf.SetTextColor(107, 114, 128)
	}
	for _, line := range []string{profile.Email, profile.Phone, profile.Address} {
		if line == "" {
			continue
		}
		pdf.CellFormat(110, 5, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(70, 5, line, "", 1, "R", false, 0, "")
	}

	pdf.SetTextColor(107, 114, 128)
	pdf.SetXY(pageLeft, 28)
	pdf.SetFont(style.FontFamily, "", 10)
	pdf.CellFormat(110, 6, "#"+doc.Number, "", 1, "L", false, 0, "")

	if style.HeaderRule {
		pdf.SetDrawColor(26, 26, 26)
		pdf.Line(pageLeft, 46, pageRight, 46)
	}
}

func (g *PDFGenerator) renderParties(pdf *gofpdf.Fpdf, doc *models.Document, style templates.Style, t i18n.Translations, lang i18n.Language) {
	pdf.SetY(52)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetFont(style.FontFamily, "B", 9)
	pdf.CellFormat(95, 5, t.BillTo, "", 1, "L", false, 0, "")

	pdf.SetTextColor(26, 26, 26)
	pdf.SetFont(style.FontFamily, "B", 11)
	pdf.CellFormat(95, 6, doc.Customer.Name, "", 1, "L", false, 0, "")

	pdf.SetFont(style.FontFamily, "", 9)
	pdf.SetTextColor(75, 85, 99)
	for _, line := range []string{doc.Customer.Company, doc.Customer.Address, doc.Customer.Email, doc.Customer.Phone} {
		if line == "" {
			continue
		}
		pdf.CellFormat(95, 5, line, "", 1, "L", false, 0, "")
	}

	// Dates on the right of the bill-to block.
	dueLabel := t.DueDate
	if doc.Type == models.DocumentTypeQuotation {
		dueLabel = t.ValidUntil
	}
	pdf.SetXY(130, 52)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetFont(style.FontFamily, "B", 9)
	pdf.CellFormat(65, 5, t.IssueDate, "", 2, "L", false, 0, "")
	pdf.SetTextColor(26, 26, 26)
	pdf.SetFont(style.FontFamily, "", 10)
	pdf.CellFormat(65, 6, i18n.FormatDate(doc.IssueDate, lang), "", 2, "L", false, 0, "")
	pdf.SetTextColor(107, 114, 128)
	pdf.SetFont(style.FontFamily, "B", 9)
	pdf.CellFormat(65, 5, dueLabel, "", 2, "L", false, 0, "")
	pdf.SetTextColor(26, 26, 26)
	pdf.SetFont(style.FontFamily, "", 10)
	pdf.CellFormat(65, 6, i18n.FormatDate(doc.DueDate, lang), "", 2, "L", false, 0, "")
}

func (g *PDFGenerator) renderItems(pdf *gofpdf.Fpdf, doc *models.Document, style templates.Style, t i18n.Translations, lang i18n.Language) float64 {
	pdf.SetY(88)

	colWidths := []float64{90, 20, 35, 35}
	headers := []string{t.Item, t.Qty, t.Price, t.Total}
	aligns := []string{"L", "C", "R", "R"}

	pdf.SetFillColor(style.TableHeaderFill.R, style.TableHeaderFill.G, style.TableHeaderFill.B)
	pdf.SetTextColor(style.TableHeaderText.R, style.TableHeaderText.G, style.TableHeaderText.B)
	pdf.SetDrawColor(229, 231, 235)
	pdf.SetFont(style.FontFamily, "B", 9)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, aligns[i], true, 0, "")
	}
	pdf.Ln(8)

	pdf.SetTextColor(26, 26, 26)
	pdf.SetFont(style.FontFamily, "", 9)
	rowHeight := 8.0

	for i, item := range doc.Items {
		fill := false
		if style.ZebraRows && i%2 == 0 {
			pdf.SetFillColor(248, 249, 250)
			fill = true
		}

		name := item.Name
		if item.Description != "" {
			name = fmt.Sprintf("%s - %s", item.Name, item.Description)
		}
		line := item.Quantity * item.Price

		pdf.CellFormat(colWidths[0], rowHeight, name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[1], rowHeight, trimFloat(item.Quantity), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[2], rowHeight, i18n.FormatCurrency(item.Price, lang), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[3], rowHeight, i18n.FormatCurrency(line, lang), "1", 0, "R", fill, 0, "")
		pdf.Ln(rowHeight)
	}

	return pdf.GetY() + 6
}

func (g *PDFGenerator) renderTotals(pdf *gofpdf.Fpdf, doc *models.Document, style templates.Style, accent templates.RGB, t i18n.Translations, lang i18n.Language, y float64) float64 {
	totals := pricing.Calculate(doc.Items, doc.Discount, doc.DiscountType, doc.TaxEnabled, doc.TaxRate, doc.AdditionalFee)

	labelX := 110.0
	labelW := 50.0
	valueW := 35.0

	row := func(label, value string, bold bool) {
		styleStr := ""
		if bold {
			styleStr = "B"
		}
		pdf.SetFont(style.FontFamily, styleStr, 10)
		pdf.SetX(labelX)
		pdf.CellFormat(labelW, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 7, value, "", 1, "R", false, 0, "")
	}

	pdf.SetY(y)
	pdf.SetTextColor(26, 26, 26)
	row(t.Subtotal, i18n.FormatCurrency(totals.Subtotal.InexactFloat64(), lang), false)

	if doc.Discount > 0 {
		label := t.Discount
		if doc.DiscountType == models.DiscountTypePercentage {
			label = fmt.Sprintf("%s (%s%%)", t.Discount, trimFloat(doc.Discount))
		}
		row(label, "-"+i18n.FormatCurrency(totals.DiscountAmount.InexactFloat64(), lang), false)
	}
	if doc.TaxEnabled {
		label := fmt.Sprintf("%s (%s%%)", t.Tax, trimFloat(doc.TaxRate))
		row(label, i18n.FormatCurrency(totals.TaxAmount.InexactFloat64(), lang), false)
	}
	if doc.AdditionalFee > 0 {
		row(t.AdditionalFee, i18n.FormatCurrency(doc.AdditionalFee, lang), false)
	}

	totalValue := i18n.FormatCurrency(totals.Total.InexactFloat64(), lang)
	if style.AccentTotal {
		pdf.SetFillColor(accent.R, accent.G, accent.B)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont(style.FontFamily, "B", 11)
		pdf.SetX(labelX)
		pdf.CellFormat(labelW, 9, t.Total, "", 0, "L", true, 0, "")
		pdf.CellFormat(valueW, 9, totalValue, "", 1, "R", true, 0, "")
		pdf.SetTextColor(26, 26, 26)
	} else {
		pdf.SetDrawColor(26, 26, 26)
		pdf.Line(labelX, pdf.GetY()+1, pageRight, pdf.GetY()+1)
		pdf.Ln(2)
		row(t.Total, totalValue, true)
	}

	return pdf.GetY() + 8
}

func (g *PDFGenerator) renderFooterSections(pdf *gofpdf.Fpdf, doc *models.Document, profile *models.BusinessProfile, style templates.Style, t i18n.Translations, y float64) {
	pdf.SetY(y)

	if profile.BankName != "" || profile.AccountNumber != "" {
		pdf.SetFont(style.FontFamily, "B", 10)
		pdf.CellFormat(180, 6, t.PaymentDetails, "", 1, "L", false, 0, "")
		pdf.SetFont(style.FontFamily, "", 9)
		pdf.SetTextColor(75, 85, 99)
		if profile.BankName != "" {
			pdf.CellFormat(180, 5, fmt.Sprintf("%s: %s", t.Bank, profile.BankName), "", 1, "L", false, 0, "")
		}
		if profile.AccountNumber != "" {
			pdf.CellFormat(180, 5, fmt.Sprintf("%s: %s", t.Account, profile.AccountNumber), "", 1, "L", false, 0, "")
		}
		if profile.AccountName != "" {
			pdf.CellFormat(180, 5, fmt.Sprintf("%s: %s", t.AccountName, profile.AccountName), "", 1, "L", false, 0, "")
		}
		pdf.SetTextColor(26, 26, 26)
		pdf.Ln(4)
	}

	if doc.Notes != "" {
		pdf.SetFont(style.FontFamily, "B", 10)
		pdf.CellFormat(180, 6, t.Notes, "", 1, "L", false, 0, "")
		pdf.SetFont(style.FontFamily, "", 9)
		pdf.SetTextColor(75, 85, 99)
		pdf.MultiCell(180, 5, doc.Notes, "", "L", false)
		pdf.SetTextColor(26, 26, 26)
		pdf.Ln(3)
	}

	if doc.Terms != "" {
		pdf.SetFont(style.FontFamily, "B", 10)
		pdf.CellFormat(180, 6, t.TermsConditions, "", 1, "L", false, 0, "")
		pdf.SetFont(style.FontFamily, "", 9)
		pdf.SetTextColor(75, 85, 99)
		pdf.MultiCell(180, 5, doc.Terms, "", "L", false)
	}

	pdf.SetY(278)
	pdf.SetTextColor(149, 165, 166)
	pdf.SetFont(style.FontFamily, "I", 8)
	pdf.CellFormat(180, 5, t.ThankYou, "", 1, "C", false, 0, "")
}

// trimFloat renders a float without trailing zeros (2 not 2.00, 2.5 as is).
func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
