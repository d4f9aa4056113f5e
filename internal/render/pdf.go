package render

// pdf.go — printable report rendering using go-pdf/fpdf. The ledger treats
// printing as an external surface; this package is that surface. Two report
// views exist:
//   - Remaining-stock report: every held line + totals footer
//     (unique item count, total inventory cost).
//   - Sales report: date-filtered sales + totals footer
//     (record count, total cost of goods sold).

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/zamantopups/Mobile-Accessories/internal/dto"
)

const shopName = "Mobile Accessories"

// StockReportPDF renders the remaining-stock report to
// storagePath/stock_report_<YYYY-MM-DD>.pdf and returns the file path.
func StockReportPDF(rep dto.StockReport, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("stock_report_%s.pdf", rep.GeneratedAt.Format("2006-01-02")))

	pdf := newReportPage("Remaining Stock Report", rep.GeneratedAt.Format("02/01/2006 15:04"))
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// Column layout: serial, code, name, group, qty, rate, amount
	cols := []float64{0.08, 0.14, 0.30, 0.14, 0.08, 0.12, 0.14}
	headers := []string{"S.No", "Code", "Name", "Group", "Qty", "Rate", "Amount"}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		align := "L"
		if i >= 4 {
			align = "R"
		}
		pdf.CellFormat(contentW*cols[i], 6, h, "B", 0, align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range rep.Lines {
		pdf.CellFormat(contentW*cols[0], 6, line.SerialNo, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*cols[1], 6, truncate(line.Code, 14), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*cols[2], 6, truncate(line.Name, 34), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*cols[3], 6, truncate(line.Group, 14), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*cols[4], 6, fmt.Sprintf("%d", line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*cols[5], 6, line.Rate.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*cols[6], 6, line.Amount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	// ── Totals footer ────────────────────────────────────────────────────────
	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW*0.7, 6, fmt.Sprintf("Unique items: %d", rep.UniqueItemCount), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.3, 6, "Total cost: "+rep.TotalCost.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// SalesReportPDF renders the sales report to
// storagePath/sales_report_<YYYY-MM-DD>.pdf and returns the file path.
func SalesReportPDF(rep dto.SalesReport, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("sales_report_%s.pdf", rep.GeneratedAt.Format("2006-01-02")))

	subtitle := "All sales"
	if rep.From != nil && rep.To != nil {
		subtitle = fmt.Sprintf("%s — %s", rep.From.Format("02/01/2006"), rep.To.Format("02/01/2006"))
	}
	pdf := newReportPage("Sales Report", subtitle)
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	cols := []float64{0.14, 0.08, 0.12, 0.28, 0.08, 0.14, 0.16}
	headers := []string{"Date", "S.No", "Code", "Name", "Qty", "Rate", "Amount"}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		align := "L"
		if i >= 4 {
			align = "R"
		}
		pdf.CellFormat(contentW*cols[i], 6, h, "B", 0, align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, rec := range rep.Records {
		pdf.CellFormat(contentW*cols[0], 6, rec.SaleDate.Format("02/01/2006"), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*cols[1], 6, rec.SerialNo, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*cols[2], 6, truncate(rec.Code, 12), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*cols[3], 6, truncate(rec.Name, 32), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*cols[4], 6, fmt.Sprintf("%d", rec.QuantitySold), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*cols[5], 6, rec.Rate.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*cols[6], 6, rec.AmountSold.StringFixed(2), "", 1, "R", false, 0, "")
	}

	// ── Totals footer ────────────────────────────────────────────────────────
	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW*0.7, 6, fmt.Sprintf("Records: %d", rep.RecordCount), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.3, 6, "Total sold: "+rep.TotalSold.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// newReportPage creates an A4 portrait page with the shop header.
func newReportPage(title, subtitle string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, shopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, subtitle, "", 1, "C", false, 0, "")
	pdf.Ln(3)
	return pdf
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
