package report

import "fmt"

// Format enumerates the render targets. Keeping this a closed enum with
// a switch per format means a new target fails compilation anywhere a
// case is missing, instead of silently dropping out of a lookup table.
type Format int

const (
	FormatDOCX Format = iota
	FormatXLSX
	FormatCSV
	FormatJSON
	FormatXML
	FormatHTML
)

// Formats lists every render target, in attachment order.
var Formats = []Format{FormatDOCX, FormatXLSX, FormatCSV, FormatJSON, FormatXML, FormatHTML}

func ParseFormat(value string) (Format, error) {
	switch value {
	case "docx":
		return FormatDOCX, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "html":
		return FormatHTML, nil
	}
	return 0, fmt.Errorf("unknown report format %q", value)
}

func (f Format) Ext() string {
	switch f {
	case FormatDOCX:
		return "docx"
	case FormatXLSX:
		return "xlsx"
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	case FormatHTML:
		return "html"
	}
	return ""
}

func (f Format) ContentType() string {
	switch f {
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatXML:
		return "application/xml"
	case FormatHTML:
		return "text/html; charset=utf-8"
	}
	return "application/octet-stream"
}

func (f Format) String() string {
	return f.Ext()
}
