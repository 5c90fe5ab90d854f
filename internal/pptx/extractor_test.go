package pptx

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func slideXMLDoc(body string) string {
	return fmt.Sprintf(`<?xml version="1.0"?><p:sld xmlns:p=%q xmlns:a=%q xmlns:r=%q><p:cSld><p:spTree>%s</p:spTree></p:cSld></p:sld>`,
		nsP, nsA, nsR, body)
}

func textShape(text string) string {
	return `<p:sp><p:nvSpPr><p:nvPr/></p:nvSpPr><p:spPr/><p:txBody><a:p><a:r><a:t>` + text + `</a:t></a:r></a:p></p:txBody></p:sp>`
}

func titleShape(text string) string {
	return `<p:sp><p:nvSpPr><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr><p:spPr/><p:txBody><a:p><a:r><a:t>` + text + `</a:t></a:r></a:p></p:txBody></p:sp>`
}

func geomShape(preset string) string {
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:nvPr/></p:nvSpPr><p:spPr><a:prstGeom prst=%q/></p:spPr></p:sp>`, preset)
}

func picture(rID string) string {
	return fmt.Sprintf(`<p:pic><p:blipFill><a:blip r:embed=%q/></p:blipFill></p:pic>`, rID)
}

func slideRels(images map[string]string) string {
	xml := `<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`
	for rID, target := range images {
		xml += fmt.Sprintf(`<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="%s"/>`, rID, target)
	}
	return xml + `</Relationships>`
}

func allOptions() ExtractOptions {
	return ExtractOptions{ImportImages: true, ImportShapes: true, ImportNotes: true}
}

func extractOne(t *testing.T, files map[string]string, opts ExtractOptions) (*Extraction, error) {
	t.Helper()
	if _, ok := files[ManifestPath]; !ok {
		files[ManifestPath] = presentationWithSlides("rId1")
	}
	r := buildReader(t, files)
	m, err := LoadManifest(r)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	return ExtractSlides(r, m, opts)
}

func TestExtractSlides_TitleAndFallback(t *testing.T) {
	ex, err := extractOne(t, map[string]string{
		"ppt/slides/slide1.xml": slideXMLDoc(titleShape("Quarterly Review")),
	}, allOptions())
	if err != nil {
		t.Fatalf("ExtractSlides failed: %v", err)
	}
	if ex.Slides[0].Title != "Quarterly Review" {
		t.Errorf("Title = %q, want %q", ex.Slides[0].Title, "Quarterly Review")
	}

	ex, err = extractOne(t, map[string]string{
		"ppt/slides/slide1.xml": slideXMLDoc(textShape("body only")),
	}, allOptions())
	if err != nil {
		t.Fatalf("ExtractSlides failed: %v", err)
	}
	if ex.Slides[0].Title != "Slide 1" {
		t.Errorf("Title = %q, want fallback %q", ex.Slides[0].Title, "Slide 1")
	}
}

func TestExtractSlides_TextDefaults(t *testing.T) {
	ex, err := extractOne(t, map[string]string{
		"ppt/slides/slide1.xml": slideXMLDoc(textShape("Hello") + textShape("World")),
	}, allOptions())
	if err != nil {
		t.Fatalf("ExtractSlides failed: %v", err)
	}

	texts := ex.Slides[0].Texts
	if len(texts) != 2 {
		t.Fatalf("text count = %d, want 2", len(texts))
	}
	if texts[0].Content != "Hello" || texts[1].Content != "World" {
		t.Errorf("contents = %q, %q", texts[0].Content, texts[1].Content)
	}
	for i, tb := range texts {
		if tb.FontSize != 16 || tb.FontFamily != "Arial" || tb.Color != "#000000" {
			t.Errorf("texts[%d] styling = %d/%s/%s, want default 16/Arial/#000000", i, tb.FontSize, tb.FontFamily, tb.Color)
		}
	}
	// Synthesized offsets keep the boxes from overlapping exactly.
	if texts[0].X == texts[1].X && texts[0].Y == texts[1].Y {
		t.Error("text boxes share the same synthesized position")
	}
}

func TestExtractSlides_ElementIDsUniqueWithinSlide(t *testing.T) {
	ex, err := extractOne(t, map[string]string{
		"ppt/slides/slide1.xml": slideXMLDoc(
			titleShape("T") + textShape("a") + textShape("b") + geomShape("rect") + geomShape("ellipse")),
	}, allOptions())
	if err != nil {
		t.Fatalf("ExtractSlides failed: %v", err)
	}

	seen := map[string]bool{}
	rec := ex.Slides[0]
	for _, tb := range rec.Texts {
		if seen[tb.ID] {
			t.Errorf("duplicate element id %q", tb.ID)
		}
		seen[tb.ID] = true
	}
	for _, sh := range rec.Shapes {
		if seen[sh.ID] {
			t.Errorf("duplicate element id %q", sh.ID)
		}
		seen[sh.ID] = true
	}
}

func TestExtractSlides_ShapeMapping(t *testing.T) {
	tests := []struct {
		preset string
		want   string
	}{
		{"rect", "rectangle"},
		{"roundRect", "rectangle"},
		{"ellipse", "circle"},
		{"line", "line"},
		{"triangle", "triangle"},
		{"diamond", "diamond"},
		{"heptagon", "rectangle"}, // unknown preset defaults
	}
	for _, tt := range tests {
		ex, err := extractOne(t, map[string]string{
			"ppt/slides/slide1.xml": slideXMLDoc(geomShape(tt.preset)),
		}, allOptions())
		if err != nil {
			t.Fatalf("ExtractSlides(%s) failed: %v", tt.preset, err)
		}
		shapes := ex.Slides[0].Shapes
		if len(shapes) != 1 {
			t.Fatalf("shape count = %d, want 1", len(shapes))
		}
		if shapes[0].Type != tt.want {
			t.Errorf("preset %q mapped to %q, want %q", tt.preset, shapes[0].Type, tt.want)
		}
	}
}

func TestExtractSlides_OptionGates(t *testing.T) {
	files := map[string]string{
		"ppt/slides/slide1.xml":            slideXMLDoc(geomShape("rect") + picture("rId5")),
		"ppt/slides/_rels/slide1.xml.rels": slideRels(map[string]string{"rId5": "../media/image1.png"}),
		"ppt/media/image1.png":             "png-bytes",
		"ppt/notesSlides/notesSlide1.xml":  slideXMLDoc(textShape("a note")),
	}

	ex, err := extractOne(t, files, ExtractOptions{})
	if err != nil {
		t.Fatalf("ExtractSlides failed: %v", err)
	}
	rec := ex.Slides[0]
	if len(rec.Images) != 0 || len(rec.Shapes) != 0 || rec.Notes != "" {
		t.Errorf("gated extraction still produced images=%d shapes=%d notes=%q",
			len(rec.Images), len(rec.Shapes), rec.Notes)
	}
}

func TestExtractSlides_ImageFaultIsolation(t *testing.T) {
	// Three pictures; rId2 has no relationship entry, so exactly two
	// images survive, one warning is recorded and the import goes on.
	ex, err := extractOne(t, map[string]string{
		"ppt/slides/slide1.xml": slideXMLDoc(picture("rId1") + picture("rId2") + picture("rId3")),
		"ppt/slides/_rels/slide1.xml.rels": slideRels(map[string]string{
			"rId1": "../media/image1.png",
			"rId3": "../media/image3.png",
		}),
		"ppt/media/image1.png": "one",
		"ppt/media/image3.png": "three",
	}, allOptions())
	if err != nil {
		t.Fatalf("ExtractSlides failed: %v", err)
	}

	if len(ex.Slides[0].Images) != 2 {
		t.Errorf("image count = %d, want 2", len(ex.Slides[0].Images))
	}
	if len(ex.Warnings) == 0 {
		t.Error("no warnings recorded for the unresolvable image")
	}
	if ex.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", ex.Skipped)
	}
}

func TestExtractSlides_MissingSlideIsFatal(t *testing.T) {
	files := map[string]string{
		ManifestPath:            presentationWithSlides("rId1", "rId2"),
		"ppt/slides/slide1.xml": slideXMLDoc(textShape("ok")),
		// slide2.xml is missing
	}
	_, err := extractOne(t, files, allOptions())
	if err == nil {
		t.Fatal("ExtractSlides succeeded, want fatal error for missing slide")
	}
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("err = %v, want ErrEntryNotFound", err)
	}
	if !strings.Contains(err.Error(), "slide 2") {
		t.Errorf("err = %v, want slide index context", err)
	}
}

func TestExtractSlides_NoSlides(t *testing.T) {
	_, err := extractOne(t, map[string]string{
		ManifestPath: presentationWithSlides(),
	}, allOptions())
	if !errors.Is(err, ErrNoSlides) {
		t.Errorf("err = %v, want ErrNoSlides", err)
	}
}

func TestExtractSlides_Notes(t *testing.T) {
	ex, err := extractOne(t, map[string]string{
		"ppt/slides/slide1.xml":           slideXMLDoc(textShape("body")),
		"ppt/notesSlides/notesSlide1.xml": slideXMLDoc(textShape("first run") + textShape("second run")),
	}, allOptions())
	if err != nil {
		t.Fatalf("ExtractSlides failed: %v", err)
	}
	if got := ex.Slides[0].Notes; got != "first run second run" {
		t.Errorf("Notes = %q, want runs joined with single spaces", got)
	}
}

func TestExtractSlides_NotesResolvedThroughRels(t *testing.T) {
	rels := `<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId9" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide" Target="../notesSlides/notesSlide7.xml"/>` +
		`</Relationships>`
	ex, err := extractOne(t, map[string]string{
		"ppt/slides/slide1.xml":            slideXMLDoc(textShape("body")),
		"ppt/slides/_rels/slide1.xml.rels": rels,
		"ppt/notesSlides/notesSlide7.xml":  slideXMLDoc(textShape("renumbered note")),
	}, allOptions())
	if err != nil {
		t.Fatalf("ExtractSlides failed: %v", err)
	}
	if got := ex.Slides[0].Notes; got != "renumbered note" {
		t.Errorf("Notes = %q, want %q", got, "renumbered note")
	}
}

func TestExtractSlides_ProgressPerSlide(t *testing.T) {
	files := map[string]string{
		ManifestPath:            presentationWithSlides("rId1", "rId2", "rId3"),
		"ppt/slides/slide1.xml": slideXMLDoc(textShape("1")),
		"ppt/slides/slide2.xml": slideXMLDoc(textShape("2")),
		"ppt/slides/slide3.xml": slideXMLDoc(textShape("3")),
	}
	var calls [][2]int
	opts := allOptions()
	opts.Progress = func(done, total int) { calls = append(calls, [2]int{done, total}) }

	if _, err := extractOne(t, files, opts); err != nil {
		t.Fatalf("ExtractSlides failed: %v", err)
	}

	want := [][2]int{{1, 3}, {2, 3}, {3, 3}}
	if len(calls) != len(want) {
		t.Fatalf("progress calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %v, want %v", i, calls[i], want[i])
		}
	}
}
