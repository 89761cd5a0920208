package outline

import (
	"fmt"

	"github.com/aheedhul/StudyPath/internal/domain"
	"github.com/aheedhul/StudyPath/internal/scheduler"
)

// Convert turns an extractor document into the domain chapter catalog.
// Records without an estimated_minutes annotation get one derived from the
// page count and the Intermediate minutes-per-page pace; the extractor's own
// estimate always wins when present. When the document has no chapters at all
// but reports a page total, equal fallback sections are synthesized so a
// schedule can still be built.
func Convert(doc *Document, cfg scheduler.Config) ([]domain.ChapterChunk, error) {
	if errs := Validate(doc); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, errs[0])
	}

	records := doc.Chapters
	if len(records) == 0 && doc.TotalPages > 0 {
		records = fallbackSections(doc.TotalPages, cfg.FallbackSectionPages)
	}

	minutesPerPage := cfg.PaceFor(domain.TierIntermediate).MinutesPerPage
	chapters := make([]domain.ChapterChunk, len(records))
	for i, rec := range records {
		c := domain.ChapterChunk{
			Title:        rec.Title,
			Level:        rec.Level,
			PageStart:    rec.PageStart,
			PageEnd:      rec.PageEnd,
			EstimatedMin: rec.EstimatedMin,
		}
		if c.Level < 1 {
			c.Level = 1
		}
		if c.EstimatedMin == 0 {
			c.EstimatedMin = c.PageCount() * minutesPerPage
		}
		chapters[i] = c
	}
	return chapters, nil
}

// fallbackSections splits an outline-less document into equal page chunks,
// mirroring the extractor's own heuristic for documents without a readable
// table of contents.
func fallbackSections(totalPages, sectionPages int) []ChapterRecord {
	if sectionPages < 1 {
		sectionPages = 1
	}
	n := (totalPages + sectionPages - 1) / sectionPages
	records := make([]ChapterRecord, n)
	for i := 0; i < n; i++ {
		end := (i + 1) * sectionPages
		if end > totalPages {
			end = totalPages
		}
		records[i] = ChapterRecord{
			Title:     fmt.Sprintf("Section %d", i+1),
			Level:     1,
			PageStart: i*sectionPages + 1,
			PageEnd:   end,
		}
	}
	return records
}
