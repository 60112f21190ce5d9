package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"dezporcento/internal/domain/records"
)

var emailTemplate = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <title>Relatório de Salários</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f5f5f5; margin: 0; padding: 0;">
    <div style="max-width: 800px; margin: 0 auto; background: #ffffff;">
        <div style="background: #2E7D32; padding: 30px; text-align: center;">
            <h1 style="color: #ffffff; margin: 0;">Relatório de Salários dos Garçons</h1>
            <p style="color: #C8E6C9; margin: 10px 0 0 0;">{{.Weekday}}, {{.Date}}</p>
        </div>
        <div style="padding: 30px;">
            <div style="background: #E8F5E9; border-radius: 10px; padding: 20px; margin-bottom: 25px;">
                <p>Total de Funcionários: <strong>{{.EmployeeCount}}</strong></p>
                <p>Total a Pagar: <strong style="color: #2E7D32; font-size: 20px;">R$ {{.Total}}</strong></p>
                <p>Pagos: <strong>{{.PaidCount}}</strong> &middot; Pendentes: <strong>{{.PendingCount}}</strong></p>
                <p>Total em Vales: <strong>R$ {{.TotalAdvances}}</strong></p>
            </div>
            {{if .GeneralNote}}<div style="background: #FFF8E1; border-radius: 10px; padding: 15px; margin-bottom: 25px;">
                <p style="margin: 0;"><strong>Observação do dia:</strong> {{.GeneralNote}}</p>
            </div>{{end}}
            <h3>Detalhamento dos Funcionários</h3>
            <table style="width: 100%; border-collapse: collapse;">
                <thead>
                    <tr>
                        <th style="background: #1565C0; color: white; padding: 12px; text-align: left;">Nome</th>
                        <th style="background: #1565C0; color: white; padding: 12px; text-align: left;">10% (R$)</th>
                        <th style="background: #1565C0; color: white; padding: 12px; text-align: left;">Entrada</th>
                        <th style="background: #1565C0; color: white; padding: 12px; text-align: left;">Saída</th>
                        <th style="background: #1565C0; color: white; padding: 12px; text-align: left;">Duração</th>
                        <th style="background: #1565C0; color: white; padding: 12px; text-align: left;">Observação</th>
                    </tr>
                </thead>
                <tbody>{{range .Rows}}
                    <tr style="border-bottom: 1px solid #ddd;">
                        <td style="padding: 12px;">{{.Name}}</td>
                        <td style="padding: 12px; color: #2E7D32; font-weight: bold;">R$ {{.SalesShare}}</td>
                        <td style="padding: 12px;">{{.CheckIn}}</td>
                        <td style="padding: 12px;">{{.CheckOut}}</td>
                        <td style="padding: 12px;">{{.Duration}}</td>
                        <td style="padding: 12px;">{{.Note}}</td>
                    </tr>{{end}}
                </tbody>
            </table>
        </div>
        <div style="background: #333; color: #fff; padding: 20px; text-align: center; font-size: 12px;">
            <p>Este é um e-mail automático. Por favor, não responda.</p>
            <p>Gerado em {{.GeneratedAt}}</p>
        </div>
    </div>
</body>
</html>
`))

type emailRow struct {
	Name       string
	SalesShare string
	CheckIn    string
	CheckOut   string
	Duration   string
	Note       string
}

type emailData struct {
	Date          string
	Weekday       string
	EmployeeCount int
	Total         string
	PaidCount     int
	PendingCount  int
	TotalAdvances string
	GeneralNote   string
	Rows          []emailRow
	GeneratedAt   string
}

// BuildEmailBody composes the HTML summary for one day's records.
func BuildEmailBody(input []records.WorkRecord, day time.Time, weekday, generalNote string, now time.Time) string {
	data := emailData{
		Date:          day.Format("02/01/2006"),
		Weekday:       weekday,
		EmployeeCount: len(input),
		GeneralNote:   generalNote,
		GeneratedAt:   now.Format("02/01/2006 às 15:04"),
	}

	var total, advances float64
	for _, record := range input {
		total += record.SalesShare
		if record.Paid {
			data.PaidCount++
		} else {
			data.PendingCount++
		}
		if record.Advance != nil {
			advances += *record.Advance
		}
		note := record.Note
		if note == "" {
			note = "-"
		}
		data.Rows = append(data.Rows, emailRow{
			Name:       record.EmployeeName,
			SalesShare: fmt.Sprintf("%.2f", record.SalesShare),
			CheckIn:    record.CheckIn,
			CheckOut:   record.CheckOut,
			Duration:   WorkDuration(record.CheckIn, record.CheckOut),
			Note:       note,
		})
	}
	data.Total = fmt.Sprintf("%.2f", total)
	data.TotalAdvances = fmt.Sprintf("%.2f", advances)

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		// The template and data are fixed shapes; execution cannot fail
		// outside programmer error.
		return ""
	}
	return buf.String()
}
