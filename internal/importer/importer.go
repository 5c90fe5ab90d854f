// Package importer drives the PPTX import pipeline: input validation,
// container opening, slide extraction, image processing and document
// mapping, with staged progress reporting and partial-failure tolerance.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuanying/pptximport/internal/document"
	"github.com/yuanying/pptximport/internal/pptx"
)

// Result is the terminal outcome of one import. Document is present iff
// Success. Warnings are non-fatal issues; Errors are the reasons a failed
// import did not complete. SkippedElements counts every element dropped at
// a non-fatal skip point.
type Result struct {
	Success         bool                           `json:"success"`
	Document        *document.PresentationDocument `json:"document,omitempty"`
	Warnings        []string                       `json:"warnings"`
	Errors          []string                       `json:"errors"`
	ImportedSlides  int                            `json:"importedSlides"`
	SkippedElements int                            `json:"skippedElements"`
}

// Import runs the full pipeline over an in-memory .pptx file. It never
// panics or returns an error: every failure mode is converted into a
// Result with Success false. The progress sink is per-call state; nil is
// allowed.
func Import(name string, data []byte, opts Options, onProgress ProgressFunc) (result Result) {
	e := newEmitter(onProgress)

	// Single top-level catch: an unexpected panic anywhere downstream is
	// reported as a failed parsing-stage event, never propagated.
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("import failed: %v", r)
			e.emit(StageParsing, e.last, msg, 0, 0)
			result = Result{Success: false, Warnings: []string{}, Errors: []string{msg}}
		}
	}()

	if errs := validateInput(name, len(data)); len(errs) > 0 {
		return Result{Success: false, Warnings: []string{}, Errors: errs}
	}

	e.emit(StageParsing, 0, "Opening presentation package", 0, 0)

	reader, err := pptx.NewReader(data)
	if err != nil {
		return fail(e, err)
	}

	e.emit(StageParsing, 10, "Reading presentation manifest", 0, 0)

	manifest, err := pptx.LoadManifest(reader)
	if err != nil {
		return fail(e, err)
	}
	total := len(manifest.SlideRefs)

	e.emit(StageExtracting, 25, fmt.Sprintf("Extracting %d slides", total), 0, total)

	extraction, err := pptx.ExtractSlides(reader, manifest, pptx.ExtractOptions{
		ImportImages: opts.ImportImages,
		ImportShapes: opts.ImportShapes,
		ImportNotes:  opts.ImportNotes,
		Progress: func(done, total int) {
			e.emit(StageExtracting, lerp(25, 50, done, total),
				fmt.Sprintf("Extracted slide %d of %d", done, total), done, total)
		},
	})
	if err != nil {
		return fail(e, err)
	}

	warnings := extraction.Warnings
	skipped := extraction.Skipped
	if opts.ImportImages {
		imgWarnings, imgSkipped := processImages(extraction.Slides, opts)
		warnings = append(warnings, imgWarnings...)
		skipped += imgSkipped
	}

	e.emit(StageConverting, 50, "Converting slides", 0, total)

	doc := document.MapDocument(extraction.Slides, documentTitle(name), func(done, total int) {
		e.emit(StageConverting, lerp(50, 90, done, total),
			fmt.Sprintf("Converted slide %d of %d", done, total), done, total)
	})

	e.emit(StageFinalizing, 90, "Finalizing document", 0, 0)
	e.emit(StageFinalizing, 100, "Import complete", 0, 0)

	if warnings == nil {
		warnings = []string{}
	}
	return Result{
		Success:         true,
		Document:        doc,
		Warnings:        warnings,
		Errors:          []string{},
		ImportedSlides:  len(doc.Slides),
		SkippedElements: skipped,
	}
}

// ImportFile is a convenience wrapper reading the file from disk first.
func ImportFile(path string, opts Options, onProgress ProgressFunc) Result {
	data, err := readInput(path)
	if err != nil {
		return Result{Success: false, Warnings: []string{}, Errors: []string{err.Error()}}
	}
	return Import(filepath.Base(path), data, opts, onProgress)
}

// readInput loads the input file from disk.
func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

// fail reports a fatal pipeline error through the progress sink and
// converts it to a failed result.
func fail(e *emitter, err error) Result {
	msg := fmt.Sprintf("import failed: %v", err)
	e.emit(StageParsing, e.last, msg, 0, 0)
	return Result{Success: false, Warnings: []string{}, Errors: []string{msg}}
}

// documentTitle derives the document title from the input file name.
func documentTitle(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
