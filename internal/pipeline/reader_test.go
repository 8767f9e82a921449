package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.txt")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return path
}

func TestReadSalesFile_UTF8(t *testing.T) {
	content := "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region\n" +
		"T1|2024-01-01|P1|USB Cable|2|199.99|C1|North\n" +
		"\n" +
		"  T2|2024-01-02|P2|Monitor|1|5000|C2|South  \n"

	lines := ReadSalesFile(context.Background(), writeTestFile(t, []byte(content)))

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines (header and blanks dropped), got %d", len(lines))
	}
	if lines[0] != "T1|2024-01-01|P1|USB Cable|2|199.99|C1|North" {
		t.Errorf("Unexpected first line: %q", lines[0])
	}
	if lines[1] != "T2|2024-01-02|P2|Monitor|1|5000|C2|South" {
		t.Errorf("Expected surrounding whitespace trimmed, got %q", lines[1])
	}
}

func TestReadSalesFile_CRLF(t *testing.T) {
	content := "header\r\nT1|2024-01-01|P1|USB Cable|2|199.99|C1|North\r\n"

	lines := ReadSalesFile(context.Background(), writeTestFile(t, []byte(content)))

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0] != "T1|2024-01-01|P1|USB Cable|2|199.99|C1|North" {
		t.Errorf("Unexpected line: %q", lines[0])
	}
}

func TestReadSalesFile_LegacyEncoding(t *testing.T) {
	// "Café" in latin-1: 0xE9 is not valid UTF-8, forcing the fallback.
	content := append([]byte("header\nT1|2024-01-01|P1|Caf"), 0xE9)
	content = append(content, []byte("|2|199.99|C1|North\n")...)

	lines := ReadSalesFile(context.Background(), writeTestFile(t, content))

	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0] != "T1|2024-01-01|P1|Café|2|199.99|C1|North" {
		t.Errorf("Expected latin-1 decoded line, got %q", lines[0])
	}
}

func TestReadSalesFile_Missing(t *testing.T) {
	lines := ReadSalesFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))

	if len(lines) != 0 {
		t.Errorf("Expected empty slice for missing file, got %d lines", len(lines))
	}
}

func TestReadSalesFile_HeaderOnly(t *testing.T) {
	lines := ReadSalesFile(context.Background(), writeTestFile(t, []byte("header only\n")))

	if len(lines) != 0 {
		t.Errorf("Expected no record lines, got %d", len(lines))
	}
}
