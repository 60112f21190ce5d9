package report

import "testing"

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"docx":  FormatDOCX,
		"xlsx":  FormatXLSX,
		"excel": FormatXLSX,
		"csv":   FormatCSV,
		"json":  FormatJSON,
		"xml":   FormatXML,
		"html":  FormatHTML,
	}
	for value, want := range cases {
		got, err := ParseFormat(value)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", value, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %v, want %v", value, got, want)
		}
	}

	if _, err := ParseFormat("pdf"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestFormatExtAndContentType(t *testing.T) {
	for _, format := range Formats {
		if format.Ext() == "" {
			t.Fatalf("format %d has no extension", format)
		}
		if format.ContentType() == "application/octet-stream" {
			t.Fatalf("format %s has no content type", format)
		}
	}
}
