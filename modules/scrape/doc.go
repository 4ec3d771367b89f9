// Package scrape implements the authenticated content-extraction operation:
// fetch a caller-supplied URL server-side and return the text of every node
// matching a CSS selector.
//
// Single page, single request: no link following, no pagination, no
// JavaScript execution.
package scrape
