package i18n

import (
	"fmt"
	"time"

	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/kirim-labs/invoice-service/internal/models"
)

var monthNames = map[Language][12]string{
	LanguageID: {
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	},
	LanguageEN: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

// FormatCurrency renders an IDR amount without fraction digits, with the
// locale's digit grouping: "Rp 100.000" for id, "Rp 100,000" for en.
func FormatCurrency(amount float64, lang Language) string {
	p := message.NewPrinter(langTag(lang))
	return p.Sprintf("Rp %v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// FormatDate renders a YYYY-MM-DD date as a long localized date, e.g.
// "2 Januari 2026". Unparseable input is returned unchanged.
func FormatDate(dateString string, lang Language) string {
	date, err := time.Parse(models.DateLayout, dateString)
	if err != nil {
		return dateString
	}
	months, ok := monthNames[lang]
	if !ok {
		months = monthNames[LanguageID]
	}
	return fmt.Sprintf("%d %s %d", date.Day(), months[date.Month()-1], date.Year())
}

// FormatDateShort renders a YYYY-MM-DD date as dd/mm/yyyy. Unparseable
// input is returned unchanged.
func FormatDateShort(dateString string) string {
	date, err := time.Parse(models.DateLayout, dateString)
	if err != nil {
		return dateString
	}
	return date.Format("02/01/2006")
}
