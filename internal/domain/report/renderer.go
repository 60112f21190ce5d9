// Package report renders one work day into the six deliverable formats.
// Every target is fed from the same record list and the same total, so
// the figures cannot drift between formats.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"time"

	"dezporcento/internal/domain/records"
)

const reportTitle = "RELATÓRIO DE SALÁRIOS DOS GARÇONS"

var csvHeader = []string{"Nome", "10% (R$)", "Entrada", "Saída", "Observação"}

// WeekdayLabel resolves a date against a Monday-start weekday name
// table.
func WeekdayLabel(names [7]string, day time.Time) string {
	return names[(int(day.Weekday())+6)%7]
}

// Renderer holds one day's records and the figures shared by every
// render target. The clock is injectable so generated artifacts are
// reproducible under test.
type Renderer struct {
	Records []records.WorkRecord
	Day     time.Time
	Weekday string
	Note    string
	Total   float64

	Now func() time.Time
}

func NewRenderer(input []records.WorkRecord, day time.Time, weekday, note string) *Renderer {
	r := &Renderer{
		Records: input,
		Day:     day,
		Weekday: weekday,
		Note:    note,
		Now:     time.Now,
	}
	for _, record := range input {
		r.Total += record.SalesShare
	}
	return r
}

// Filename names the artifact for downloads and attachments.
func (r *Renderer) Filename(format Format) string {
	return fmt.Sprintf("relatorio_%s.%s", r.Day.Format("2006-01-02"), format.Ext())
}

// Render produces the artifact for one format.
func (r *Renderer) Render(format Format) ([]byte, error) {
	switch format {
	case FormatDOCX:
		return r.renderDOCX()
	case FormatXLSX:
		return r.renderXLSX()
	case FormatCSV:
		return r.renderCSV()
	case FormatJSON:
		return r.renderJSON()
	case FormatXML:
		return r.renderXML()
	case FormatHTML:
		return r.renderHTML()
	}
	return nil, fmt.Errorf("unknown report format %d", format)
}

// GenerateAll renders every format. One failing format fails the batch;
// partial attachment sets would silently drop a deliverable.
func (r *Renderer) GenerateAll() (map[Format][]byte, error) {
	result := make(map[Format][]byte, len(Formats))
	for _, format := range Formats {
		content, err := r.Render(format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format.Ext(), err)
		}
		result[format] = content
	}
	return result, nil
}

func (r *Renderer) renderCSV() ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, record := range r.Records {
		row := []string{
			record.EmployeeName,
			fmt.Sprintf("%.2f", record.SalesShare),
			record.CheckIn,
			record.CheckOut,
			record.Note,
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type jsonSummary struct {
	Date          string  `json:"data"`
	Weekday       string  `json:"dia_semana"`
	EmployeeCount int     `json:"total_funcionarios"`
	Total         float64 `json:"total_valores"`
}

type jsonEmployee struct {
	Name       string  `json:"nome"`
	SalesShare float64 `json:"valor_10_percent"`
	CheckIn    string  `json:"hora_entrada"`
	CheckOut   string  `json:"hora_saida"`
	Note       string  `json:"observacao"`
}

type jsonReport struct {
	Summary   jsonSummary    `json:"relatorio"`
	Employees []jsonEmployee `json:"funcionarios"`
}

func (r *Renderer) renderJSON() ([]byte, error) {
	payload := jsonReport{
		Summary: jsonSummary{
			Date:          r.Day.Format("2006-01-02"),
			Weekday:       r.Weekday,
			EmployeeCount: len(r.Records),
			Total:         r.Total,
		},
		Employees: make([]jsonEmployee, 0, len(r.Records)),
	}
	for _, record := range r.Records {
		payload.Employees = append(payload.Employees, jsonEmployee{
			Name:       record.EmployeeName,
			SalesShare: record.SalesShare,
			CheckIn:    record.CheckIn,
			CheckOut:   record.CheckOut,
			Note:       record.Note,
		})
	}
	return json.MarshalIndent(payload, "", "  ")
}

type xmlSummary struct {
	EmployeeCount int    `xml:"total_funcionarios"`
	Total         string `xml:"total_valores"`
}

type xmlEmployee struct {
	Name       string `xml:"nome"`
	SalesShare string `xml:"valor_10_percent"`
	CheckIn    string `xml:"hora_entrada"`
	CheckOut   string `xml:"hora_saida"`
	Note       string `xml:"observacao"`
}

type xmlEmployeeList struct {
	Employees []xmlEmployee `xml:"funcionario"`
}

type xmlReport struct {
	XMLName   xml.Name        `xml:"relatorio"`
	Date      string          `xml:"data,attr"`
	Weekday   string          `xml:"dia_semana,attr"`
	Summary   xmlSummary      `xml:"resumo"`
	Employees xmlEmployeeList `xml:"funcionarios"`
}

func (r *Renderer) renderXML() ([]byte, error) {
	payload := xmlReport{
		Date:    r.Day.Format("2006-01-02"),
		Weekday: r.Weekday,
		Summary: xmlSummary{
			EmployeeCount: len(r.Records),
			Total:         fmt.Sprintf("%.2f", r.Total),
		},
	}
	for _, record := range r.Records {
		payload.Employees.Employees = append(payload.Employees.Employees, xmlEmployee{
			Name:       record.EmployeeName,
			SalesShare: fmt.Sprintf("%.2f", record.SalesShare),
			CheckIn:    record.CheckIn,
			CheckOut:   record.CheckOut,
			Note:       record.Note,
		})
	}
	content, err := xml.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), content...), nil
}

func money(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
