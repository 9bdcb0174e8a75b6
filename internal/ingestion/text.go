// Package ingestion reads job postings from text, HTML, PDF and DOCX files
// and cleans them into plain text the analyzer can work with.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	spaceRunRe     = regexp.MustCompile(`[ \t\f\v\p{Zs}]+`)
	blankLineRunRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes text content while preserving structure.
// Bullet and heading lines are kept intact so list items can still be
// recognized downstream.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Compose Unicode so accented letters compare equal however they were typed
	content = norm.NFC.String(content)

	// 2. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 3. Process each line
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	// 4. Remove excessive blank lines (max 2 consecutive)
	result := blankLineRunRe.ReplaceAllString(strings.Join(cleanedLines, "\n"), "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if line == "" {
		return ""
	}

	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)

	// Keep markdown headings as-is, normalize leading spaces to 0
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := len(line) - len(trimmed)
	if isBulletLine(trimmed) {
		// Collapse spacing after the marker but keep the marker itself
		marker, rest, _ := strings.Cut(trimmed, " ")
		trimmed = marker + " " + spaceRunRe.ReplaceAllString(strings.TrimSpace(rest), " ")
	} else {
		trimmed = spaceRunRe.ReplaceAllString(strings.TrimSpace(trimmed), " ")
	}

	if indent > 0 {
		return strings.Repeat(" ", indent) + trimmed
	}
	return trimmed
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// Format is the detected type of a posting file
type Format string

// Supported posting formats
const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// DetectFormat picks a Format from the file extension. Unknown extensions
// are read as plain text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	default:
		return FormatText
	}
}

// ReadPosting reads a posting file, converts it to text according to its
// format, cleans it, and returns cleaned text with metadata.
func ReadPosting(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &ExtractError{Path: path, Message: "file not found", Cause: err}
		}
		return "", nil, &ExtractError{Path: path, Message: "failed to read file", Cause: err}
	}

	format := DetectFormat(path)
	raw, err := ExtractText(format, content)
	if err != nil {
		return "", nil, &ExtractError{Path: path, Format: format, Message: "failed to extract text", Cause: err}
	}

	cleanedText := CleanText(raw)
	return cleanedText, NewMetadata(cleanedText, path, format), nil
}

// ExtractText converts document bytes of the given format into raw text
func ExtractText(format Format, data []byte) (string, error) {
	switch format {
	case FormatText:
		return string(data), nil
	case FormatHTML:
		return HTMLToText(string(data))
	case FormatPDF:
		return extractPDFText(data)
	case FormatDOCX:
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
