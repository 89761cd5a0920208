package outline

import "fmt"

// Validate checks an extractor document before conversion and returns all
// problems found, not just the first.
func Validate(doc *Document) []error {
	var errs []error

	if doc.TotalPages < 0 {
		errs = append(errs, fmt.Errorf("total_pages must not be negative, got %d", doc.TotalPages))
	}

	for i, rec := range doc.Chapters {
		ref := rec.Title
		if ref == "" {
			ref = fmt.Sprintf("chapter %d", i+1)
			errs = append(errs, fmt.Errorf("chapter %d: title is required", i+1))
		}
		if rec.PageStart < 1 {
			errs = append(errs, fmt.Errorf("%s: page_start must be at least 1, got %d", ref, rec.PageStart))
		}
		if rec.PageEnd < rec.PageStart {
			errs = append(errs, fmt.Errorf("%s: page_end %d is before page_start %d", ref, rec.PageEnd, rec.PageStart))
		}
		if rec.EstimatedMin < 0 {
			errs = append(errs, fmt.Errorf("%s: estimated_minutes must not be negative, got %d", ref, rec.EstimatedMin))
		}
	}

	return errs
}
