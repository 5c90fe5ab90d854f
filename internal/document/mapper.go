package document

import (
	"fmt"
	"time"

	"github.com/yuanying/pptximport/internal/pptx"
)

// MapDocument converts extracted slide records into a presentation
// document. Every created entity shares one "now" timestamp taken at the
// start of the conversion pass, so repeated mappings of the same records
// differ only in that instant. Element ids are inherited verbatim from the
// extractor. Report, when set, is called after each mapped slide.
func MapDocument(records []pptx.SlideRecord, title string, report func(done, total int)) *PresentationDocument {
	now := time.Now()

	doc := &PresentationDocument{
		ID:        fmt.Sprintf("doc_%d", now.UnixMilli()),
		Title:     title,
		Theme:     DefaultTheme(),
		Metadata:  Metadata{Tags: []string{}, Source: "pptx-import"},
		Settings:  DefaultSettings(),
		CreatedAt: now,
		UpdatedAt: now,
		Version:   FormatVersion,
	}

	total := len(records)
	for i, rec := range records {
		doc.Slides = append(doc.Slides, mapSlide(rec, now))
		if report != nil {
			report(i+1, total)
		}
	}

	return doc
}

// mapSlide converts one slide record, applying the default layout and
// background uniformly.
func mapSlide(rec pptx.SlideRecord, now time.Time) Slide {
	slide := Slide{
		ID:          fmt.Sprintf("slide%d_%d", rec.Index, now.UnixMilli()),
		Title:       rec.Title,
		Connections: []string{},
		Layout:      DefaultLayout,
		Background:  DefaultBackground(),
		Notes:       rec.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, t := range rec.Texts {
		slide.Elements = append(slide.Elements, SlideElement{
			ID:     t.ID,
			Kind:   ElementText,
			X:      t.X,
			Y:      t.Y,
			Width:  t.Width,
			Height: t.Height,
			Properties: map[string]any{
				"fontSize":   t.FontSize,
				"fontFamily": t.FontFamily,
				"textColor":  t.Color,
			},
			Content:   t.Content,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, img := range rec.Images {
		slide.Elements = append(slide.Elements, SlideElement{
			ID:         img.ID,
			Kind:       ElementImage,
			X:          img.X,
			Y:          img.Y,
			Width:      img.Width,
			Height:     img.Height,
			Properties: map[string]any{},
			Content:    img.DataURL,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	for _, sh := range rec.Shapes {
		slide.Elements = append(slide.Elements, SlideElement{
			ID:     sh.ID,
			Kind:   ElementShape,
			X:      sh.X,
			Y:      sh.Y,
			Width:  sh.Width,
			Height: sh.Height,
			Properties: map[string]any{
				"shapeType":   sh.Type,
				"fillColor":   sh.FillColor,
				"strokeColor": sh.StrokeColor,
				"strokeWidth": sh.StrokeWidth,
			},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return slide
}
