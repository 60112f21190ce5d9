package report

import (
	"bytes"
	"html/template"
)

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <title>Relatório de Salários - {{.Date}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        h1 { color: #2E7D32; text-align: center; }
        .info { background: #E8F5E9; padding: 15px; border-radius: 8px; margin: 20px 0; }
        .info p { margin: 5px 0; }
        table { width: 100%; border-collapse: collapse; margin-top: 20px; }
        th { background: #1565C0; color: white; padding: 12px; text-align: left; }
        td { padding: 10px; border-bottom: 1px solid #ddd; }
        tr:nth-child(even) { background: #f9f9f9; }
        .total { font-weight: bold; font-size: 18px; color: #2E7D32; }
        .footer { margin-top: 30px; text-align: center; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <div class="info">
        <p><strong>Data:</strong> {{.Date}}</p>
        <p><strong>Dia da Semana:</strong> {{.Weekday}}</p>
        <p><strong>Total de Funcionários:</strong> {{.EmployeeCount}}</p>
        <p class="total">Total a Pagar: R$ {{.Total}}</p>{{if .GeneralNote}}
        <p><strong>Observação do Dia:</strong> {{.GeneralNote}}</p>{{end}}
    </div>
    <table>
        <thead>
            <tr>
                <th>Nome</th>
                <th>10% (R$)</th>
                <th>Entrada</th>
                <th>Saída</th>
                <th>Observação</th>
            </tr>
        </thead>
        <tbody>{{range .Rows}}
            <tr>
                <td>{{.Name}}</td>
                <td>R$ {{.SalesShare}}</td>
                <td>{{.CheckIn}}</td>
                <td>{{.CheckOut}}</td>
                <td>{{.Note}}</td>
            </tr>{{end}}
        </tbody>
    </table>
    <div class="footer">
        Gerado em {{.GeneratedAt}}
    </div>
</body>
</html>
`))

type htmlRow struct {
	Name       string
	SalesShare string
	CheckIn    string
	CheckOut   string
	Note       string
}

type htmlPage struct {
	Title         string
	Date          string
	Weekday       string
	EmployeeCount int
	Total         string
	GeneralNote   string
	Rows          []htmlRow
	GeneratedAt   string
}

func (r *Renderer) renderHTML() ([]byte, error) {
	page := htmlPage{
		Title:         reportTitle,
		Date:          r.Day.Format("02/01/2006"),
		Weekday:       r.Weekday,
		EmployeeCount: len(r.Records),
		Total:         money(r.Total),
		GeneralNote:   r.Note,
		GeneratedAt:   r.Now().Format("02/01/2006 às 15:04"),
	}
	for _, record := range r.Records {
		page.Rows = append(page.Rows, htmlRow{
			Name:       record.EmployeeName,
			SalesShare: money(record.SalesShare),
			CheckIn:    record.CheckIn,
			CheckOut:   record.CheckOut,
			Note:       orDash(record.Note),
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
