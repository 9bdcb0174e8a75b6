package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	input := "# Title\n## Subtitle\nContent here"
	result := CleanText(input)

	assert.Contains(t, result, "# Title")
	assert.Contains(t, result, "## Subtitle")
	assert.Contains(t, result, "Content here")
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n- Item 2\n* Item 3"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "- Item 2")
	assert.Contains(t, result, "* Item 3")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with    multiple    spaces"
	result := CleanText(input)

	assert.Contains(t, result, "Line with multiple spaces")
	assert.NotContains(t, result, "    ") // Should not have 4 spaces
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	// Should have max 2 consecutive newlines
	assert.NotContains(t, result, "\n\n\n\n")
	// But should preserve up to 2
	assert.Contains(t, result, "\n\n")
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	// All should be normalized to LF
	assert.NotContains(t, result, "\r\n")
	assert.NotContains(t, result, "\r")
	assert.Contains(t, result, "\n")
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	result1 := CleanText(input)
	result2 := CleanText(input)

	// Same input should produce identical output
	assert.Equal(t, result1, result2)
}

func TestCleanText_EmptyInput(t *testing.T) {
	result := CleanText("")
	assert.Empty(t, result)
}

func TestCleanText_OnlyWhitespace(t *testing.T) {
	result := CleanText("   \n  \n  ")
	assert.Empty(t, result)
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	input := "Test with émojis 🚀 and spéciàl chàracters"
	result := CleanText(input)

	assert.Contains(t, result, "émojis")
	assert.Contains(t, result, "🚀")
	assert.Contains(t, result, "spéciàl chàracters")
}

func TestCleanText_PreserveIndentation(t *testing.T) {
	input := "    Indented line\n  Less indented"
	result := CleanText(input)

	// Should preserve relative indentation
	assert.Contains(t, result, "Indented")
	assert.Contains(t, result, "Less indented")
}

func TestCleanText_BulletGlyphs(t *testing.T) {
	input := "•   Build   APIs\n  -   Write    tests"
	result := CleanText(input)

	assert.Equal(t, "• Build APIs\n  - Write tests", result)
}

func TestCleanText_UnicodeComposition(t *testing.T) {
	// "e" followed by a combining acute accent
	result := CleanText("Caf\u0065\u0301 manager")
	assert.Equal(t, "Caf\u00e9 manager", result)
}

func TestCleanText_NonBreakingSpaces(t *testing.T) {
	result := CleanText("Senior\u00a0\u00a0Engineer\u00a0")
	assert.Equal(t, "Senior Engineer", result)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatHTML, DetectFormat("posting.HTML"))
	assert.Equal(t, FormatHTML, DetectFormat("posting.htm"))
	assert.Equal(t, FormatPDF, DetectFormat("/tmp/posting.pdf"))
	assert.Equal(t, FormatDOCX, DetectFormat("posting.docx"))
	assert.Equal(t, FormatText, DetectFormat("posting.md"))
	assert.Equal(t, FormatText, DetectFormat("posting"))
}

func TestReadPosting_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(path, []byte("Senior Python Developer\r\n\r\n-  Build   APIs\r\n"), 0644))

	text, metadata, err := ReadPosting(path)
	require.NoError(t, err)

	assert.Equal(t, "Senior Python Developer\n\n- Build APIs", text)
	require.NotNil(t, metadata)
	assert.Equal(t, path, metadata.Source)
	assert.Equal(t, FormatText, metadata.Format)
	assert.Equal(t, computeHash(text), metadata.Hash)
	assert.Equal(t, len([]rune(text)), metadata.Chars)
}

func TestReadPosting_HTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.html")
	page := `<html><body><nav>Home | Jobs</nav>
<div class="job-description"><h2>Backend Engineer</h2><p>Join Globex.</p>
<ul><li>Design APIs</li><li>Own on-call</li></ul></div></body></html>`
	require.NoError(t, os.WriteFile(path, []byte(page), 0644))

	text, metadata, err := ReadPosting(path)
	require.NoError(t, err)

	assert.Equal(t, FormatHTML, metadata.Format)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "- Design APIs")
	assert.Contains(t, text, "- Own on-call")
	assert.NotContains(t, text, "Home | Jobs")
}

func TestReadPosting_FileNotFound(t *testing.T) {
	_, _, err := ReadPosting(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	assert.Contains(t, err.Error(), "file not found")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadPosting_CorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0644))

	_, _, err := ReadPosting(path)
	require.Error(t, err)

	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	assert.Equal(t, FormatPDF, extractErr.Format)
}

func TestReadPosting_CorruptDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

	_, _, err := ReadPosting(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to extract text")
}
