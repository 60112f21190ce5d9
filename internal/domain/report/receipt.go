package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"dezporcento/internal/domain/records"
)

// ReceiptPDF renders a payment receipt for a single work record, for
// handing to the employee when the day's share is settled.
func ReceiptPDF(record records.WorkRecord, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Recibo de Pagamento")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Funcionário: %s", record.EmployeeName)))
	pdf.Ln(7)
	if record.WorkDate != nil {
		pdf.Cell(0, 8, tr(fmt.Sprintf("Dia de trabalho: %s", record.WorkDate.Format("02/01/2006"))))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, tr(fmt.Sprintf("Horário: %s - %s", record.CheckIn, record.CheckOut)))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr(fmt.Sprintf("10%% das vendas: R$ %s", money(record.SalesShare))))
	pdf.Ln(7)
	if record.Advance != nil {
		method := record.AdvanceMethod
		if method == "" {
			method = record.PaymentMethod
		}
		pdf.Cell(0, 8, tr(fmt.Sprintf("Vale: R$ %s (%s)", money(*record.Advance), method)))
		pdf.Ln(7)
	}
	status := "Pendente"
	if record.Paid {
		status = fmt.Sprintf("Pago (%s)", record.PaymentMethod)
	}
	pdf.Cell(0, 8, tr("Situação: "+status))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 8, tr("Gerado em "+generatedAt.Format("02/01/2006 às 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
