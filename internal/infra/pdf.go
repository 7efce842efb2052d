package infra

// pdf.go: receipt PDF for an invoice, rendered in memory with go-pdf/fpdf.
// Layout: business header, invoice number and date, client, one row per line
// (description, quantity, unit price, subtotal) and the bold total.

import (
	"bytes"
	"fmt"

	"kiosco/internal/dto"

	"github.com/go-pdf/fpdf"
)

const (
	ticketWidth  = 80.0 // mm, thermal roll
	ticketMargin = 4.0
	rowHeight    = 5.0
)

// GenerarFacturaPDF renders f as a single-page receipt sized to its content.
func GenerarFacturaPDF(f *dto.FacturaResponse) ([]byte, error) {
	height := 70 + rowHeight*float64(len(f.Detalles))
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: ticketWidth, Ht: height},
	})
	pdf.SetMargins(ticketMargin, ticketMargin, ticketMargin)
	pdf.SetAutoPageBreak(false, ticketMargin)
	pdf.AddPage()

	// Core fonts are cp1252; descriptions may carry accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	contentW := ticketWidth - 2*ticketMargin

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Kiosco", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, tr("Comprobante de venta"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Factura N° %d", f.IDFactura)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, f.Fecha.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	cliente := "Consumidor final"
	if f.Cliente != nil {
		cliente = *f.Cliente
	}
	pdf.CellFormat(contentW, 4, tr("Cliente: "+cliente), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(ticketMargin, pdf.GetY(), ticketWidth-ticketMargin, pdf.GetY())
	pdf.Ln(2)

	// ── Lines ────────────────────────────────────────────────────────────────
	col1 := contentW * 0.44 // description
	col2 := contentW * 0.12 // qty
	col3 := contentW * 0.22 // unit price
	col4 := contentW * 0.22 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, rowHeight, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, rowHeight, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, rowHeight, "Precio", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, rowHeight, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, d := range f.Detalles {
		nombre := fmt.Sprintf("Producto %d", d.IDProducto)
		if d.Descripcion != nil {
			nombre = *d.Descripcion
		}
		if r := []rune(nombre); len(r) > 24 {
			nombre = string(r[:23]) + "."
		}
		pdf.CellFormat(col1, rowHeight, tr(nombre), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, rowHeight, fmt.Sprintf("x%d", d.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, rowHeight, "$"+d.PrecioUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, rowHeight, "$"+d.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(ticketMargin, pdf.GetY(), ticketWidth-ticketMargin, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2+col3, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 6, "$"+f.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, tr("¡Gracias por su compra!"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}
