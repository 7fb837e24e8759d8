package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// FileType is the declared upload format, derived from the file extension.
type FileType string

const (
	TypePDF  FileType = "pdf"
	TypeDOCX FileType = "docx"
	TypeTXT  FileType = "txt"
)

var (
	// ErrUnsupportedFormat marks uploads outside the accepted extensions.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrExtractionFailed marks a corrupt or unreadable payload.
	ErrExtractionFailed = errors.New("extraction failed")
)

// TypeFromFileName maps a file name to its declared type. Legacy .doc is
// routed through the DOCX path.
func TypeFromFileName(fileName string) (FileType, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return TypePDF, nil
	case ".docx", ".doc":
		return TypeDOCX, nil
	case ".txt":
		return TypeTXT, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, fileName)
	}
}

// Text extracts readable text from raw file bytes. The uploaded content is
// never written anywhere; everything happens in memory.
func Text(data []byte, fileType FileType) (string, error) {
	switch fileType {
	case TypePDF:
		return extractPDF(data)
	case TypeDOCX:
		return extractDOCX(data)
	case TypeTXT:
		return decodeTXT(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, fileType)
	}
}

// Info describes an upload without fully parsing it.
type Info struct {
	FileName   string  `json:"fileName"`
	FileType   string  `json:"fileType"`
	FileSizeKB float64 `json:"fileSizeKb"`
	Supported  bool    `json:"supported"`
}

// FileInfo returns basic metadata for an upload.
func FileInfo(data []byte, fileName string) Info {
	ft, err := TypeFromFileName(fileName)
	return Info{
		FileName:   fileName,
		FileType:   string(ft),
		FileSizeKB: float64(len(data)) / 1024,
		Supported:  err == nil,
	}
}

// extractPDF concatenates per-page text with blank-line separators, skipping
// pages without extractable text. A scan-only PDF yields an empty string.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: parse pdf: %v", ErrExtractionFailed, err)
	}

	var parts []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: pdf page %d: %v", ErrExtractionFailed, i, err)
		}
		if strings.TrimSpace(text) != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

type docxDocument struct {
	Body docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
	Tables     []docxTable     `xml:"tbl"`
}

type docxParagraph struct {
	Runs []string `xml:"r>t"`
}

func (p docxParagraph) text() string {
	return strings.Join(p.Runs, "")
}

type docxTable struct {
	Rows []docxRow `xml:"tr"`
}

type docxRow struct {
	Cells []docxCell `xml:"tc"`
}

type docxCell struct {
	Paragraphs []docxParagraph `xml:"p"`
}

// extractDOCX emits non-empty body paragraphs one per line, followed by
// table rows rendered as " | "-joined cell contents.
func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: open docx: %v", ErrExtractionFailed, err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("%w: document.xml not found", ErrExtractionFailed)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open document.xml: %v", ErrExtractionFailed, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("%w: read document.xml: %v", ErrExtractionFailed, err)
	}

	var doc docxDocument
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("%w: parse document.xml: %v", ErrExtractionFailed, err)
	}

	var parts []string
	for _, p := range doc.Body.Paragraphs {
		if text := strings.TrimSpace(p.text()); text != "" {
			parts = append(parts, p.text())
		}
	}
	for _, table := range doc.Body.Tables {
		for _, row := range table.Rows {
			var cells []string
			for _, cell := range row.Cells {
				var cellParts []string
				for _, p := range cell.Paragraphs {
					if text := strings.TrimSpace(p.text()); text != "" {
						cellParts = append(cellParts, text)
					}
				}
				if len(cellParts) > 0 {
					cells = append(cells, strings.Join(cellParts, "\n"))
				}
			}
			if len(cells) > 0 {
				parts = append(parts, strings.Join(cells, " | "))
			}
		}
	}
	return strings.Join(parts, "\n"), nil
}

// decodeTXT tries utf-8, utf-16, latin-1, and cp1252 in order, then falls
// back to utf-8 with replacement runes rather than failing.
func decodeTXT(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	// BOM required: without one, arbitrary even-length bytes would "decode".
	utf16 := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	if decoded, err := utf16.Bytes(data); err == nil && utf8.Valid(decoded) {
		return string(decoded)
	}
	if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data); err == nil {
		return string(decoded)
	}
	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
		return string(decoded)
	}
	return string(bytes.ToValidUTF8(data, []byte("�")))
}
