package report

import (
	"github.com/go-pdf/fpdf"
)

// barPalette is cycled across chart bars. These are the twelve pastel tones
// of the qualitative palette the original report used.
var barPalette = [][3]int{
	{141, 211, 199}, {255, 255, 179}, {190, 186, 218}, {251, 128, 114},
	{128, 177, 211}, {253, 180, 98}, {179, 222, 105}, {252, 205, 229},
	{217, 217, 217}, {188, 128, 189}, {204, 235, 197}, {255, 237, 111},
}

// document wraps an fpdf instance with the translator and options shared by
// every page of one report.
type document struct {
	pdf *fpdf.Fpdf
	// tr maps UTF-8 to the cp1252 core-font encoding so accented labels
	// render correctly.
	tr  func(string) string
	opt Options
}

func newDocument(opt Options) *document {
	pdf := fpdf.New("P", "mm", opt.PageSize, "")
	// One logical page per course: never spill a long roster onto a second
	// page, matching the fixed page-count contract.
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(opt.Labels.ReportTitle, true)
	pdf.SetCreator("enrolldeck", true)
	return &document{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		opt: opt,
	}
}

// contentWidth is the usable width between the left and right margins.
func (d *document) contentWidth() float64 {
	w, _ := d.pdf.GetPageSize()
	left, _, right, _ := d.pdf.GetMargins()
	return w - left - right
}
