package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector matches page chrome that never belongs to a posting
const noiseSelector = "nav, footer, header, script, style, noscript, form, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// blockSelector matches elements that end a line of text
const blockSelector = "p, div, section, article, h1, h2, h3, h4, h5, h6, tr, ul, ol, li, dt, dd"

// JobPostingSelectors returns selectors optimized for job board pages.
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}
}

// HTMLToText parses a saved posting page and returns its main text with
// one line per block element. List items become "- " bullet lines.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	// Try to find main content, falling back to body
	var mainContent *goquery.Selection
	for _, selector := range JobPostingSelectors() {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	mainContent.Find("br").ReplaceWithHtml("\n")
	mainContent.Find("li").PrependHtml("- ")
	mainContent.Find(blockSelector).AppendHtml("\n")

	// Titles usually sit outside the content container
	text := mainContent.Text()
	if title := strings.TrimSpace(doc.Find("h1").First().Text()); title != "" && !strings.Contains(text, title) {
		text = title + "\n" + text
	}

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n"), nil
}
