package certificate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/i18n"
)

const (
	pageW   = 215.9 // US Letter, mm
	margin  = 18.0
	barH    = 3.0
	font    = "Helvetica"
	creator = "disc"
)

type rgb struct{ r, g, b int }

var (
	ink    = rgb{17, 24, 39}
	muted  = rgb{107, 114, 128}
	frame  = rgb{243, 244, 246}
	track  = rgb{229, 231, 235}
	accent = rgb{59, 130, 246}
)

// RenderPDF writes the certificate as a single-page PDF to w.
func (c *Certificate) RenderPDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle(i18n.T(c.Lang, i18n.CertTitle), true)
	pdf.SetCreator(creator, false)
	if !c.Date.IsZero() {
		pdf.SetCreationDate(c.Date)
		pdf.SetModificationDate(c.Date)
	}
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()

	// Core fonts are cp1252; this covers the Spanish catalog.
	text := pdf.UnicodeTranslatorFromDescriptor("")

	_, pageH := pdf.GetPageSize()
	setDraw(pdf, frame)
	pdf.SetLineWidth(4)
	pdf.Rect(6, 6, pageW-12, pageH-12, "D")
	seal(pdf, pageW-margin-14, margin+12)

	// Header
	pdf.SetY(margin + 6)
	setText(pdf, ink)
	pdf.SetFont(font, "B", 24)
	pdf.CellFormat(0, 12, text(i18n.T(c.Lang, i18n.CertTitle)), "", 1, "C", false, 0, "")
	setText(pdf, muted)
	pdf.SetFont(font, "", 12)
	pdf.CellFormat(0, 7, text(i18n.T(c.Lang, i18n.CertSubtitle)), "", 1, "C", false, 0, "")

	// Name and date
	pdf.Ln(14)
	pdf.SetFont(font, "", 10)
	pdf.CellFormat(0, 6, text(i18n.T(c.Lang, i18n.CertCertifies)), "", 1, "C", false, 0, "")
	setText(pdf, accent)
	pdf.SetFont(font, "B", 20)
	pdf.CellFormat(0, 11, text(c.UserName), "", 1, "C", false, 0, "")
	setText(pdf, muted)
	pdf.SetFont(font, "", 10)
	completed := fmt.Sprintf(i18n.T(c.Lang, i18n.CertCompleted), c.FormattedDate())
	pdf.CellFormat(0, 6, text(completed), "", 1, "C", false, 0, "")

	// Summary
	pdf.Ln(12)
	pdf.CellFormat(0, 6, text(i18n.T(c.Lang, i18n.CertProfile)), "", 1, "C", false, 0, "")
	setText(pdf, ink)
	pdf.SetFont(font, "B", 14)
	pdf.CellFormat(0, 8, text(c.Summary()), "", 1, "C", false, 0, "")

	// Scores, two per row
	pdf.Ln(10)
	colW := (pageW - 2*margin - 8) / 2
	top := pdf.GetY()
	for i, d := range disc.AllDimensions() {
		x := margin + float64(i%2)*(colW+8)
		y := top + float64(i/2)*26
		scoreCard(pdf, text, x, y, colW, c.Lang, d, c.Result.Scores.Get(d))
	}

	// Key insight
	pdf.SetY(top + 2*26 + 8)
	setText(pdf, ink)
	pdf.SetFont(font, "B", 12)
	pdf.CellFormat(0, 7, text(i18n.T(c.Lang, i18n.CertKeyInsight)), "", 1, "L", false, 0, "")
	pdf.SetFont(font, "", 11)
	pdf.MultiCell(0, 6, text(c.KeyInsight()), "", "L", false)

	// Footer
	pdf.SetY(pageH - margin - 14)
	setDraw(pdf, track)
	pdf.SetLineWidth(0.3)
	pdf.Line(margin, pdf.GetY(), pageW-margin, pdf.GetY())
	pdf.Ln(3)
	setText(pdf, muted)
	pdf.SetFont(font, "I", 8)
	pdf.MultiCell(0, 4, text(i18n.T(c.Lang, i18n.CertDisclaimer)), "", "C", false)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render certificate: %w", err)
	}
	return pdf.Output(w)
}

// WriteFile renders the certificate into dir and returns the file path.
func (c *Certificate) WriteFile(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, c.FileName())
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create certificate: %w", err)
	}
	if err := c.RenderPDF(f); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close certificate: %w", err)
	}
	return path, nil
}

func scoreCard(pdf *gofpdf.Fpdf, text func(string) string, x, y, w float64, lang i18n.Lang, d disc.Dimension, score int) {
	col := hexColor(d.Color())

	setDraw(pdf, track)
	pdf.SetLineWidth(0.3)
	pdf.RoundedRect(x, y, w, 22, 2, "1234", "D")

	// Badge
	pdf.SetFillColor(col.r, col.g, col.b)
	pdf.Circle(x+8, y+11, 4.5, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(font, "B", 10)
	pdf.SetXY(x+3.5, y+8)
	pdf.CellFormat(9, 6, d.Code(), "", 0, "C", false, 0, "")

	// Name and percentage
	setText(pdf, ink)
	pdf.SetFont(font, "B", 11)
	pdf.SetXY(x+16, y+4)
	pdf.CellFormat(w-36, 6, text(i18n.DimensionName(lang, d)), "", 0, "L", false, 0, "")
	pdf.SetFont(font, "", 11)
	pdf.SetXY(x+w-20, y+4)
	pdf.CellFormat(16, 6, strconv.Itoa(score)+"%", "", 0, "R", false, 0, "")

	// Bar
	barX, barY, barW := x+16, y+13, w-20
	setFill(pdf, track)
	pdf.Rect(barX, barY, barW, barH, "F")
	if score > 0 {
		pdf.SetFillColor(col.r, col.g, col.b)
		pdf.Rect(barX, barY, barW*float64(min(score, 100))/100, barH, "F")
	}
}

func seal(pdf *gofpdf.Fpdf, cx, cy float64) {
	pdf.SetAlpha(0.3, "Normal")
	setDraw(pdf, accent)
	pdf.SetLineWidth(1.2)
	pdf.Circle(cx, cy, 10, "D")
	pdf.SetLineWidth(0.6)
	pdf.Circle(cx, cy, 7, "D")
	setText(pdf, accent)
	pdf.SetFont("Courier", "B", 8)
	pdf.SetXY(cx-7, cy-2)
	pdf.CellFormat(14, 4, "DISC", "", 0, "C", false, 0, "")
	pdf.SetAlpha(1, "Normal")
}

func setText(pdf *gofpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setDraw(pdf *gofpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }
func setFill(pdf *gofpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }

// hexColor parses "#RRGGBB". Malformed input yields the ink color.
func hexColor(s string) rgb {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return ink
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ink
	}
	return rgb{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}
}
