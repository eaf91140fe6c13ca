package textsource

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText reads the text layer of a PDF row by row so that line structure
// survives. Falls back to the reader's plain-text stream when rows are empty.
func pdfText(data []byte, maxBytes int64) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during PDF text extraction: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open PDF reader: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("reading page %d: %w", i, err)
		}
		for _, row := range rows {
			for j, word := range row.Content {
				if j > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(word.S)
			}
			sb.WriteString("\n")
		}
		if int64(sb.Len()) > maxBytes {
			break
		}
	}
	if strings.TrimSpace(sb.String()) != "" {
		return sb.String(), nil
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract plain text: %w", err)
	}
	b, err := io.ReadAll(io.LimitReader(plain, maxBytes))
	if err != nil {
		return "", fmt.Errorf("read plain text: %w", err)
	}
	return string(b), nil
}
