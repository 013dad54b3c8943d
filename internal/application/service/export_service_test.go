package service

import "testing"

func TestParseExportFormat(t *testing.T) {
	cases := []struct {
		raw  string
		want ExportFormat
	}{
		{"", FormatCSV},
		{"csv", FormatCSV},
		{"xlsx", FormatXLSX},
		{"excel", FormatXLSX},
		{"pdf", FormatPDF},
	}
	for _, tc := range cases {
		got, err := ParseExportFormat(tc.raw)
		if err != nil {
			t.Errorf("ParseExportFormat(%q): %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseExportFormat(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseExportFormatRejectsUnknown(t *testing.T) {
	if _, err := ParseExportFormat("docx"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
