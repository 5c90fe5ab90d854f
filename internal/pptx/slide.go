package pptx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
)

// slideXML mirrors the pieces of a slide part the importer reads: the
// shape tree with its text bodies, geometry presets and picture fills.
type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    struct {
		SpTree struct {
			Shapes   []shapeXML `xml:"sp"`
			Pictures []picXML   `xml:"pic"`
		} `xml:"spTree"`
	} `xml:"cSld"`
}

type shapeXML struct {
	NvSpPr struct {
		NvPr struct {
			Placeholder *struct {
				Type string `xml:"type,attr"`
			} `xml:"ph"`
		} `xml:"nvPr"`
	} `xml:"nvSpPr"`
	SpPr struct {
		PrstGeom *struct {
			Preset string `xml:"prst,attr"`
		} `xml:"prstGeom"`
	} `xml:"spPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type txBodyXML struct {
	Paragraphs []struct {
		Runs []struct {
			Text string `xml:"t"`
		} `xml:"r"`
	} `xml:"p"`
}

type picXML struct {
	BlipFill struct {
		Blip *struct {
			Embed string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships embed,attr"`
		} `xml:"blip"`
	} `xml:"blipFill"`
}

// extractSlide reads one slide part and extracts its title, text boxes,
// images and shapes into a SlideRecord. A missing or unparsable slide part
// is fatal; per-image failures are isolated into warnings via ex.
func extractSlide(r *Reader, ref SlideRef, n int, opts ExtractOptions, ex *Extraction) (SlideRecord, error) {
	data, err := r.ReadFile(ref.Path)
	if err != nil {
		return SlideRecord{}, err
	}

	var sld slideXML
	if err := xml.Unmarshal(data, &sld); err != nil {
		return SlideRecord{}, fmt.Errorf("failed to parse %s: %w", ref.Path, err)
	}

	rec := SlideRecord{Index: n}
	tree := sld.CSld.SpTree

	rec.Title = extractTitle(tree.Shapes, n)
	rec.Texts = extractTexts(tree.Shapes, n)

	if opts.ImportImages {
		rec.Images = extractImages(r, ref, tree.Pictures, n, ex)
	}
	if opts.ImportShapes {
		rec.Shapes = extractShapes(tree.Shapes, n)
	}
	if opts.ImportNotes {
		rec.Notes = extractNotes(r, ref, n)
	}

	return rec, nil
}

// extractTitle returns the first text run inside a title-typed placeholder,
// or "Slide {n}" when none is found.
func extractTitle(shapes []shapeXML, n int) string {
	for _, sp := range shapes {
		ph := sp.NvSpPr.NvPr.Placeholder
		if ph == nil || (ph.Type != "title" && ph.Type != "ctrTitle") {
			continue
		}
		if sp.TxBody == nil {
			continue
		}
		for _, p := range sp.TxBody.Paragraphs {
			for _, run := range p.Runs {
				if run.Text != "" {
					return run.Text
				}
			}
		}
	}
	return fmt.Sprintf("Slide %d", n)
}

// extractTexts turns every shape containing text runs into one text box.
// Positions are synthesized with a fixed per-element offset so boxes do
// not overlap exactly; font styling is a fixed default.
func extractTexts(shapes []shapeXML, n int) []TextBox {
	var texts []TextBox
	for _, sp := range shapes {
		content := shapeText(sp.TxBody)
		if content == "" {
			continue
		}
		i := len(texts)
		texts = append(texts, TextBox{
			ID:         fmt.Sprintf("slide%d_text%d", n, i+1),
			Content:    content,
			X:          100 + float64(i)*20,
			Y:          100 + float64(i)*80,
			Width:      400,
			Height:     60,
			FontSize:   defaultFontSize,
			FontFamily: defaultFontFamily,
			Color:      defaultTextColor,
		})
	}
	return texts
}

// shapeText joins a shape's text runs: runs within a paragraph are
// concatenated, paragraphs are joined with newlines.
func shapeText(body *txBodyXML) string {
	if body == nil {
		return ""
	}
	var paragraphs []string
	for _, p := range body.Paragraphs {
		var b strings.Builder
		for _, run := range p.Runs {
			b.WriteString(run.Text)
		}
		if b.Len() > 0 {
			paragraphs = append(paragraphs, b.String())
		}
	}
	return strings.TrimSpace(strings.Join(paragraphs, "\n"))
}

// extractImages resolves each picture's relationship id through the slide's
// .rels file and reads the target media. Failures are per-image warnings,
// never fatal to the slide.
func extractImages(r *Reader, ref SlideRef, pics []picXML, n int, ex *Extraction) []ImageData {
	if len(pics) == 0 {
		return nil
	}

	rels, err := LoadRelationships(r, ref.Path)
	if err != nil {
		ex.warnSkip(fmt.Sprintf("slide %d: failed to load relationships: %v, skipping %d images", n, err, len(pics)), len(pics))
		return nil
	}

	var images []ImageData
	for _, pic := range pics {
		if pic.BlipFill.Blip == nil || pic.BlipFill.Blip.Embed == "" {
			ex.warnSkip(fmt.Sprintf("slide %d: picture without an embedded image reference, skipping", n), 1)
			continue
		}
		relID := pic.BlipFill.Blip.Embed
		rel, ok := rels[relID]
		if !ok {
			ex.warnSkip(fmt.Sprintf("slide %d: unresolvable image relationship %q, skipping", n, relID), 1)
			continue
		}
		data, err := r.ReadFile(rel.Target)
		if err != nil {
			ex.warnSkip(fmt.Sprintf("slide %d: failed to read image %q: %v, skipping", n, rel.Target, err), 1)
			continue
		}
		i := len(images)
		images = append(images, ImageData{
			ID:          fmt.Sprintf("slide%d_image%d", n, i+1),
			RelID:       relID,
			Target:      rel.Target,
			ContentType: mediaContentType(rel.Target),
			Data:        data,
			X:           120 + float64(i)*20,
			Y:           120 + float64(i)*90,
			Width:       300,
			Height:      200,
		})
	}
	return images
}

// extractShapes maps each shape with a geometry preset through the fixed
// preset table. Fill and stroke are fixed defaults.
func extractShapes(shapes []shapeXML, n int) []ShapeData {
	var out []ShapeData
	for _, sp := range shapes {
		if sp.SpPr.PrstGeom == nil {
			continue
		}
		preset := sp.SpPr.PrstGeom.Preset
		i := len(out)
		out = append(out, ShapeData{
			ID:          fmt.Sprintf("slide%d_shape%d", n, i+1),
			Preset:      preset,
			Type:        mapShapeType(preset),
			X:           150 + float64(i)*30,
			Y:           150 + float64(i)*90,
			Width:       200,
			Height:      150,
			FillColor:   defaultFillColor,
			StrokeColor: defaultStrokeColor,
			StrokeWidth: defaultStrokeWidth,
		})
	}
	return out
}

// mediaContentType guesses a MIME type from a media target's extension.
func mediaContentType(target string) string {
	if ct := mime.TypeByExtension(path.Ext(target)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// collectTextRuns walks slide-dialect XML and collects the contents of all
// <a:t> text run elements in document order.
func collectTextRuns(data []byte) []string {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var runs []string
	var current strings.Builder
	inRun := false

	for {
		tok, err := decoder.Token()
		if err != nil {
			if err != io.EOF {
				return runs
			}
			break
		}
		switch el := tok.(type) {
		case xml.StartElement:
			if el.Name.Local == "t" {
				inRun = true
				current.Reset()
			}
		case xml.EndElement:
			if el.Name.Local == "t" {
				inRun = false
				if current.Len() > 0 {
					runs = append(runs, current.String())
				}
			}
		case xml.CharData:
			if inRun {
				current.Write(el)
			}
		}
	}
	return runs
}
