package pptx

import (
	"fmt"
	"log"
)

// ExtractOptions control which element kinds the extractor reads.
// Progress, when set, is called after each slide with the number of slides
// done and the total.
type ExtractOptions struct {
	ImportImages bool
	ImportShapes bool
	ImportNotes  bool
	Progress     func(done, total int)
}

// Extraction is the result of walking every slide of a package: the
// ordered slide records plus the non-fatal warnings and the count of
// elements skipped along the way.
type Extraction struct {
	Slides   []SlideRecord
	Warnings []string
	Skipped  int
}

// warnSkip records a non-fatal extraction problem and counts the elements
// it dropped.
func (ex *Extraction) warnSkip(msg string, skipped int) {
	log.Printf("warning: %s", msg)
	ex.Warnings = append(ex.Warnings, msg)
	ex.Skipped += skipped
}

// ExtractSlides walks the manifest's slide references in order and
// extracts each slide into a SlideRecord. A slide whose part is missing or
// unparsable fails the whole extraction; per-element failures inside a
// slide degrade to warnings.
func ExtractSlides(r *Reader, m *Manifest, opts ExtractOptions) (*Extraction, error) {
	if len(m.SlideRefs) == 0 {
		return nil, ErrNoSlides
	}

	ex := &Extraction{}
	total := len(m.SlideRefs)
	for i, ref := range m.SlideRefs {
		rec, err := extractSlide(r, ref, i+1, opts, ex)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		ex.Slides = append(ex.Slides, rec)
		if opts.Progress != nil {
			opts.Progress(i+1, total)
		}
	}

	return ex, nil
}
