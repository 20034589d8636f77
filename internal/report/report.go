// Package report writes the QC report artifacts offered for download.
package report

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	TextFileName = "QC_Report.txt"
	TextMIME     = "text/plain"
	DocxFileName = "QC_Report.docx"
	DocxMIME     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	Title        = "Recording Quality Check"
)

// WriteText writes the report verbatim to dir/QC_Report.txt, replacing any
// previous report, and returns the file path.
func WriteText(dir, report string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, TextFileName)
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// WriteDocx renders the report into dir/QC_Report.docx and returns the path.
func WriteDocx(dir, report string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(dir, DocxFileName)
	if err := markdownToDocx(Title, report, path); err != nil {
		return "", fmt.Errorf("write docx: %w", err)
	}
	return path, nil
}

// DocxBytes renders the report as a .docx document in memory, staging the
// file under tempDir ("" means the OS temp dir).
func DocxBytes(tempDir, report string) ([]byte, error) {
	dir, err := os.MkdirTemp(tempDir, "qc-docx-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	path, err := WriteDocx(dir, report)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
