package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Extractor applies CSS selectors to HTML documents and returns the text
// content of matching nodes.
type Extractor struct{}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the trimmed text content of every node
// matching selector, in document order.
//
// Malformed markup never fails: parsing is lenient and repairs the tree
// best-effort. An unparseable selector yields *SelectorError; zero matching
// nodes yield ErrNoMatch, which is distinct from a successful match whose
// texts happen to be empty strings.
func (e *Extractor) Extract(html, selector string) ([]string, error) {
	// Compile before parsing the document so a bad selector never depends on
	// document content.
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, &SelectorError{Selector: selector, Detail: err.Error()}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	matches := doc.FindMatcher(matcher)
	if matches.Length() == 0 {
		return nil, ErrNoMatch
	}

	texts := make([]string, 0, matches.Length())
	matches.Each(func(_ int, s *goquery.Selection) {
		// Flattened descendant text, outer whitespace stripped only.
		texts = append(texts, strings.TrimSpace(s.Text()))
	})

	return texts, nil
}
