// Package templates maps template tags to PDF style descriptors. Template
// selection is a pure function over the enum; there is no state and no
// dispatch beyond the switch.
package templates

import (
	"strconv"
	"strings"

	"github.com/kirim-labs/invoice-service/internal/models"
)

// RGB is a 0-255 color triple.
type RGB struct {
	R, G, B int
}

// Style describes how a template lays out the rendered document.
type Style struct {
	// FontFamily is a core PDF family ("Helvetica" or "Times").
	FontFamily string
	// TitleSize is the document title size in points.
	TitleSize float64
	// TitleStyle is the gofpdf style string for the title ("", "B", "I").
	TitleStyle string
	// AccentTitle colors the title with the document accent color.
	AccentTitle bool
	// HeaderBand fills a full-width accent band behind the header.
	HeaderBand bool
	// AccentBar draws a short accent bar above the title.
	AccentBar bool
	// HeaderRule draws a horizontal rule under the header block.
	HeaderRule bool
	// TableHeaderFill is the item table header background.
	TableHeaderFill RGB
	// TableHeaderText is the item table header text color.
	TableHeaderText RGB
	// ZebraRows alternates row backgrounds in the item table.
	ZebraRows bool
	// AccentTotal fills the grand-total row with the accent color.
	AccentTotal bool
}

var defaultAccent = RGB{R: 16, G: 185, B: 129} // #10b981

var (
	lightGray = RGB{R: 243, G: 244, B: 246}
	midGray   = RGB{R: 229, G: 231, B: 235}
	darkText  = RGB{R: 26, G: 26, B: 26}
	white     = RGB{R: 255, G: 255, B: 255}
)

// StyleFor returns the style descriptor for a template tag. Unknown tags
// fall back to the modern style.
func StyleFor(template models.TemplateType) Style {
	switch template {
	case models.TemplateMinimal:
		return Style{
			FontFamily:      "Helvetica",
			TitleSize:       24,
			TitleStyle:      "",
			HeaderRule:      true,
			TableHeaderFill: white,
			TableHeaderText: darkText,
		}
	case models.TemplateCreative:
		return Style{
			FontFamily:      "Helvetica",
			TitleSize:       30,
			TitleStyle:      "B",
			AccentTitle:     true,
			AccentBar:       true,
			TableHeaderFill: lightGray,
			TableHeaderText: darkText,
			ZebraRows:       true,
			AccentTotal:     true,
		}
	case models.TemplateCorporate:
		return Style{
			FontFamily:      "Times",
			TitleSize:       20,
			TitleStyle:      "B",
			HeaderRule:      true,
			TableHeaderFill: midGray,
			TableHeaderText: darkText,
		}
	case models.TemplateElegant:
		return Style{
			FontFamily:      "Times",
			TitleSize:       24,
			TitleStyle:      "I",
			AccentTitle:     true,
			HeaderRule:      true,
			TableHeaderFill: white,
			TableHeaderText: darkText,
		}
	case models.TemplateBold:
		return Style{
			FontFamily:      "Helvetica",
			TitleSize:       28,
			TitleStyle:      "B",
			HeaderBand:      true,
			TableHeaderFill: darkText,
			TableHeaderText: white,
			ZebraRows:       true,
			AccentTotal:     true,
		}
	default: // modern
		return Style{
			FontFamily:      "Helvetica",
			TitleSize:       26,
			TitleStyle:      "B",
			AccentTitle:     true,
			TableHeaderFill: lightGray,
			TableHeaderText: darkText,
			AccentTotal:     true,
		}
	}
}

// ParseAccent converts a "#rrggbb" accent color to RGB. Malformed values
// fall back to the default green so rendering never fails on user input.
func ParseAccent(hex string) RGB {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return defaultAccent
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return defaultAccent
	}
	return RGB{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}
}
