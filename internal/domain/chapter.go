package domain

import "fmt"

// ChapterChunk is one entry of the ordered chapter catalog produced by the
// document-extraction collaborator. The sequence is read-only to the
// scheduling core.
type ChapterChunk struct {
	Title        string
	Level        int
	PageStart    int
	PageEnd      int
	EstimatedMin int
}

func (c ChapterChunk) PageCount() int {
	n := c.PageEnd - c.PageStart + 1
	if n < 1 {
		return 1
	}
	return n
}

func (c ChapterChunk) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("%w: chapter title is required", ErrValidation)
	}
	if c.PageEnd < c.PageStart {
		return fmt.Errorf("%w: chapter %q has page_end %d before page_start %d",
			ErrValidation, c.Title, c.PageEnd, c.PageStart)
	}
	if c.EstimatedMin <= 0 {
		return fmt.Errorf("%w: chapter %q has non-positive estimated_minutes %d",
			ErrValidation, c.Title, c.EstimatedMin)
	}
	return nil
}

// TotalEstimatedMin sums the estimated study minutes across the catalog.
func TotalEstimatedMin(chapters []ChapterChunk) int {
	total := 0
	for _, c := range chapters {
		total += c.EstimatedMin
	}
	return total
}
