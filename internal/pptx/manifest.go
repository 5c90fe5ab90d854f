package pptx

import (
	"encoding/xml"
	"fmt"
	"log"
)

// SlideRef is one ordered slide reference from the presentation manifest.
type SlideRef struct {
	RelID string // relationship id from the sldId element
	Path  string // resolved slide part path, e.g. "ppt/slides/slide1.xml"
}

// Manifest holds the ordered slide references of a presentation package.
// The order of SlideRefs is the manifest order and is authoritative for
// the final slide order.
type Manifest struct {
	SlideRefs []SlideRef
}

// presentationXML mirrors the pieces of ppt/presentation.xml the importer
// needs: the ordered slide id list.
type presentationXML struct {
	XMLName     xml.Name `xml:"presentation"`
	SlideIDList struct {
		IDs []struct {
			RelID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
		} `xml:"sldId"`
	} `xml:"sldIdLst"`
}

// LoadManifest parses the presentation manifest and resolves each slide
// reference to its part path through the presentation's relationship file.
// When the relationship entry is missing, the positional convention
// ("ppt/slides/slide{n}.xml") is used as a fallback.
func LoadManifest(r *Reader) (*Manifest, error) {
	data, err := r.ReadFile(ManifestPath)
	if err != nil {
		return nil, err
	}

	var pres presentationXML
	if err := xml.Unmarshal(data, &pres); err != nil {
		return nil, fmt.Errorf("failed to parse presentation manifest: %w", err)
	}

	rels, err := LoadRelationships(r, ManifestPath)
	if err != nil {
		log.Printf("warning: failed to load presentation relationships: %v, falling back to positional slide paths", err)
		rels = nil
	}

	m := &Manifest{}
	for i, id := range pres.SlideIDList.IDs {
		ref := SlideRef{RelID: id.RelID}
		if rel, ok := rels[id.RelID]; ok && rel.HasSuffixType(relTypeSlide) {
			ref.Path = rel.Target
		} else {
			ref.Path = fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
		}
		m.SlideRefs = append(m.SlideRefs, ref)
	}

	return m, nil
}
