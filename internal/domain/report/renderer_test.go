package report

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"dezporcento/internal/domain/records"
	"dezporcento/internal/platform/config"
)

func testDay(t *testing.T) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", "2024-03-15")
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}
	return day
}

func testRenderer(t *testing.T, input []records.WorkRecord) *Renderer {
	t.Helper()
	day := testDay(t)
	r := NewRenderer(input, day, WeekdayLabel(config.WeekdayNames, day), "Observação geral")
	r.Now = func() time.Time { return day.Add(18 * time.Hour) }
	return r
}

func sampleRecords() []records.WorkRecord {
	return []records.WorkRecord{
		{EmployeeName: "Ana", SalesShare: 50, CheckIn: "08:00", CheckOut: "16:00", Note: "caixa"},
		{EmployeeName: "Bruno", SalesShare: 32.5, CheckIn: "12:00", CheckOut: "22:00"},
	}
}

func TestWeekdayLabel(t *testing.T) {
	day := testDay(t) // 2024-03-15 is a Friday
	if got := WeekdayLabel(config.WeekdayNames, day); got != "Sexta-feira" {
		t.Fatalf("expected Sexta-feira, got %q", got)
	}
	sunday := day.AddDate(0, 0, 2)
	if got := WeekdayLabel(config.WeekdayNames, sunday); got != "Domingo" {
		t.Fatalf("expected Domingo, got %q", got)
	}
	monday := day.AddDate(0, 0, 3)
	if got := WeekdayLabel(config.WeekdayNames, monday); got != "Segunda-feira" {
		t.Fatalf("expected Segunda-feira, got %q", got)
	}
}

func TestFilename(t *testing.T) {
	r := testRenderer(t, nil)
	if got := r.Filename(FormatCSV); got != "relatorio_2024-03-15.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestRenderCSV(t *testing.T) {
	r := testRenderer(t, sampleRecords())
	content, err := r.Render(FormatCSV)
	if err != nil {
		t.Fatalf("render csv: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Nome,10% (R$),Entrada,Saída,Observação" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "Ana,50.00,08:00,16:00,caixa" {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestRenderCSVEmpty(t *testing.T) {
	r := testRenderer(t, nil)
	content, err := r.Render(FormatCSV)
	if err != nil {
		t.Fatalf("render csv: %v", err)
	}
	if string(content) != "Nome,10% (R$),Entrada,Saída,Observação\n" {
		t.Fatalf("expected header only, got %q", string(content))
	}
}

func TestRenderJSON(t *testing.T) {
	r := testRenderer(t, sampleRecords())
	content, err := r.Render(FormatJSON)
	if err != nil {
		t.Fatalf("render json: %v", err)
	}

	var payload struct {
		Summary struct {
			Date          string  `json:"data"`
			Weekday       string  `json:"dia_semana"`
			EmployeeCount int     `json:"total_funcionarios"`
			Total         float64 `json:"total_valores"`
		} `json:"relatorio"`
		Employees []struct {
			Name string `json:"nome"`
		} `json:"funcionarios"`
	}
	if err := json.Unmarshal(content, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Summary.Date != "2024-03-15" || payload.Summary.Weekday != "Sexta-feira" {
		t.Fatalf("unexpected summary %+v", payload.Summary)
	}
	if payload.Summary.EmployeeCount != 2 || payload.Summary.Total != 82.5 {
		t.Fatalf("unexpected figures %+v", payload.Summary)
	}
	if len(payload.Employees) != 2 || payload.Employees[0].Name != "Ana" {
		t.Fatalf("unexpected employees %+v", payload.Employees)
	}
}

func TestRenderJSONEmptyListNotNull(t *testing.T) {
	r := testRenderer(t, nil)
	content, err := r.Render(FormatJSON)
	if err != nil {
		t.Fatalf("render json: %v", err)
	}
	if strings.Contains(string(content), `"funcionarios": null`) {
		t.Fatalf("expected empty array, got null: %s", content)
	}
	if !strings.Contains(string(content), `"funcionarios": []`) {
		t.Fatalf("expected empty funcionarios array in %s", content)
	}
}

func TestRenderXML(t *testing.T) {
	r := testRenderer(t, sampleRecords())
	content, err := r.Render(FormatXML)
	if err != nil {
		t.Fatalf("render xml: %v", err)
	}
	if !strings.HasPrefix(string(content), xml.Header) {
		t.Fatalf("expected xml declaration prefix")
	}

	var payload struct {
		XMLName xml.Name `xml:"relatorio"`
		Date    string   `xml:"data,attr"`
		Weekday string   `xml:"dia_semana,attr"`
		Summary struct {
			EmployeeCount int    `xml:"total_funcionarios"`
			Total         string `xml:"total_valores"`
		} `xml:"resumo"`
		Employees struct {
			Items []struct {
				Name       string `xml:"nome"`
				SalesShare string `xml:"valor_10_percent"`
			} `xml:"funcionario"`
		} `xml:"funcionarios"`
	}
	if err := xml.Unmarshal(content, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Date != "2024-03-15" || payload.Weekday != "Sexta-feira" {
		t.Fatalf("unexpected attributes %q %q", payload.Date, payload.Weekday)
	}
	if payload.Summary.Total != "82.50" {
		t.Fatalf("unexpected total %q", payload.Summary.Total)
	}
	if len(payload.Employees.Items) != 2 || payload.Employees.Items[1].SalesShare != "32.50" {
		t.Fatalf("unexpected employees %+v", payload.Employees.Items)
	}
}

func TestRenderXMLEmptyKeepsContainer(t *testing.T) {
	r := testRenderer(t, nil)
	content, err := r.Render(FormatXML)
	if err != nil {
		t.Fatalf("render xml: %v", err)
	}
	if !strings.Contains(string(content), "<funcionarios>") {
		t.Fatalf("expected funcionarios container in %s", content)
	}
}

func TestRenderHTML(t *testing.T) {
	r := testRenderer(t, sampleRecords())
	content, err := r.Render(FormatHTML)
	if err != nil {
		t.Fatalf("render html: %v", err)
	}

	page := string(content)
	for _, want := range []string{
		"RELATÓRIO DE SALÁRIOS DOS GARÇONS",
		"Sexta-feira",
		"15/03/2024",
		"Ana",
		"R$ 82.50",
		"Observação geral",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected %q in html output", want)
		}
	}
}

func TestRenderXLSX(t *testing.T) {
	r := testRenderer(t, sampleRecords())
	content, err := r.Render(FormatXLSX)
	if err != nil {
		t.Fatalf("render xlsx: %v", err)
	}

	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer workbook.Close()

	title, err := workbook.GetCellValue("Relatório", "A1")
	if err != nil {
		t.Fatalf("read title: %v", err)
	}
	if title != "RELATÓRIO DE SALÁRIOS DOS GARÇONS" {
		t.Fatalf("unexpected title %q", title)
	}

	name, err := workbook.GetCellValue("Relatório", "A6")
	if err != nil {
		t.Fatalf("read name: %v", err)
	}
	if name != "Ana" {
		t.Fatalf("unexpected first employee %q", name)
	}
}

func TestRenderDOCX(t *testing.T) {
	r := testRenderer(t, sampleRecords())
	content, err := r.Render(FormatDOCX)
	if err != nil {
		t.Fatalf("render docx: %v", err)
	}

	archive, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	found := false
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected word/document.xml in archive")
	}
}

func TestGenerateAll(t *testing.T) {
	r := testRenderer(t, sampleRecords())
	artifacts, err := r.GenerateAll()
	if err != nil {
		t.Fatalf("generate all: %v", err)
	}
	if len(artifacts) != len(Formats) {
		t.Fatalf("expected %d artifacts, got %d", len(Formats), len(artifacts))
	}
	for format, content := range artifacts {
		if len(content) == 0 {
			t.Fatalf("empty artifact for %s", format)
		}
	}
}

func TestTotalConsistentAcrossFormats(t *testing.T) {
	r := testRenderer(t, sampleRecords())

	jsonContent, err := r.Render(FormatJSON)
	if err != nil {
		t.Fatalf("render json: %v", err)
	}
	xmlContent, err := r.Render(FormatXML)
	if err != nil {
		t.Fatalf("render xml: %v", err)
	}
	htmlContent, err := r.Render(FormatHTML)
	if err != nil {
		t.Fatalf("render html: %v", err)
	}

	if !strings.Contains(string(jsonContent), `"total_valores": 82.5`) {
		t.Fatalf("json total missing")
	}
	if !strings.Contains(string(xmlContent), "<total_valores>82.50</total_valores>") {
		t.Fatalf("xml total missing")
	}
	if !strings.Contains(string(htmlContent), "82.50") {
		t.Fatalf("html total missing")
	}
}
