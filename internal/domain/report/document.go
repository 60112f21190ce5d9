package report

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

// renderDOCX builds the word-processor document: centered title, bold
// metadata paragraph, a grid table with a bold header row, and the
// generation timestamp.
func (r *Renderer) renderDOCX() ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph()
	title.Justification("center")
	title.AddText(reportTitle).Size("32").Bold()

	meta := doc.AddParagraph()
	meta.AddText("Data: " + r.Day.Format("02/01/2006")).Bold()
	meta = doc.AddParagraph()
	meta.AddText("Dia da Semana: " + r.Weekday).Bold()
	meta = doc.AddParagraph()
	meta.AddText(fmt.Sprintf("Total de Funcionários: %d", len(r.Records))).Bold()
	meta = doc.AddParagraph()
	meta.AddText("Total a Pagar: R$ " + money(r.Total)).Bold()

	table := doc.AddTable(len(r.Records)+1, len(csvHeader), 9000, nil)
	for col, header := range csvHeader {
		table.TableRows[0].TableCells[col].AddParagraph().AddText(header).Bold()
	}
	for i, record := range r.Records {
		cells := table.TableRows[i+1].TableCells
		cells[0].AddParagraph().AddText(record.EmployeeName)
		cells[1].AddParagraph().AddText(money(record.SalesShare))
		cells[2].AddParagraph().AddText(record.CheckIn)
		cells[3].AddParagraph().AddText(record.CheckOut)
		cells[4].AddParagraph().AddText(orDash(record.Note))
	}

	footer := doc.AddParagraph()
	footer.AddText("Gerado em: " + r.Now().Format("02/01/2006 às 15:04"))

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
