// Package outline loads the document-extraction collaborator's output: an
// ordered list of chapter records with page ranges and optional study-minute
// estimates. The scheduling core never parses documents itself; this is its
// only ingestion boundary.
package outline

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is the top-level JSON structure produced by the extractor.
type Document struct {
	TotalPages int             `json:"total_pages"`
	Chapters   []ChapterRecord `json:"chapters"`
}

// ChapterRecord mirrors the extractor's wire format. Field names are fixed
// for compatibility with existing producers.
type ChapterRecord struct {
	Title        string `json:"title"`
	Level        int    `json:"level"`
	PageStart    int    `json:"page_start"`
	PageEnd      int    `json:"page_end"`
	EstimatedMin int    `json:"estimated_minutes,omitempty"`
}

// LoadDocument reads and parses an outline file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading outline file: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing outline file: %w", err)
	}
	return &doc, nil
}
