package ingestion

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	docxParagraphEndRe = regexp.MustCompile(`</w:p>`)
	docxBreakRe        = regexp.MustCompile(`<w:(?:br|cr)\s*/>`)
	docxTabRe          = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTagRe           = regexp.MustCompile(`<[^>]+>`)
)

// extractPDFText returns the plain text of every page in order
func extractPDFText(data []byte) (string, error) {
	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

// extractDocxText returns the document body with one line per paragraph
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText strips WordprocessingML markup, keeping paragraph breaks
func docxXMLToText(content string) string {
	content = docxParagraphEndRe.ReplaceAllString(content, "\n")
	content = docxBreakRe.ReplaceAllString(content, "\n")
	content = docxTabRe.ReplaceAllString(content, "\t")
	content = xmlTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
