// Package extractor selects text content from HTML documents with CSS
// selectors.
//
// Documents are parsed leniently (standard permissive HTML parsing), selector
// syntax errors are reported distinctly from empty result sets, and matches
// are returned in document order.
package extractor
