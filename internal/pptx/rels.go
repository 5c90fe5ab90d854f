package pptx

import (
	"encoding/xml"
	"fmt"
	"path"
	"strings"
)

// Relationship type suffixes used by the importer. Full relationship type
// URIs share the officeDocument/2006 prefix; matching on the suffix keeps
// this robust across strict/transitional producers.
const (
	relTypeSlide      = "/slide"
	relTypeNotesSlide = "/notesSlide"
	relTypeImage      = "/image"
)

// Relationship is one entry of a package part's .rels file, with its
// target already resolved to a package-absolute path.
type Relationship struct {
	ID     string
	Type   string
	Target string
}

// Relationships maps relationship ids to their resolved entries.
type Relationships map[string]Relationship

// relationshipsXML mirrors the OPC .rels file structure.
type relationshipsXML struct {
	XMLName xml.Name `xml:"Relationships"`
	Rels    []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// LoadRelationships reads and parses the .rels file belonging to the given
// package part. Relative targets are resolved against the part's directory.
func LoadRelationships(r *Reader, partPath string) (Relationships, error) {
	relsPath := relsPathFor(partPath)
	data, err := r.ReadFile(relsPath)
	if err != nil {
		return nil, err
	}

	var parsed relationshipsXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", relsPath, err)
	}

	rels := make(Relationships, len(parsed.Rels))
	baseDir := path.Dir(normalizePath(partPath))
	for _, rel := range parsed.Rels {
		rels[rel.ID] = Relationship{
			ID:     rel.ID,
			Type:   rel.Type,
			Target: resolveTarget(baseDir, rel.Target),
		}
	}

	return rels, nil
}

// HasSuffixType reports whether the relationship's type URI ends with the
// given suffix (e.g. "/slide", "/image").
func (rel Relationship) HasSuffixType(suffix string) bool {
	return strings.HasSuffix(rel.Type, suffix)
}

// FirstOfType returns the first relationship whose type URI ends with the
// given suffix.
func (rels Relationships) FirstOfType(suffix string) (Relationship, bool) {
	for _, rel := range rels {
		if rel.HasSuffixType(suffix) {
			return rel, true
		}
	}
	return Relationship{}, false
}

// relsPathFor computes the .rels path for a package part
// (e.g. "ppt/slides/slide1.xml" -> "ppt/slides/_rels/slide1.xml.rels").
func relsPathFor(partPath string) string {
	partPath = normalizePath(partPath)
	return path.Join(path.Dir(partPath), "_rels", path.Base(partPath)+".rels")
}

// resolveTarget resolves a relationship target against the owning part's
// directory. Targets starting with "/" are package-absolute.
func resolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return normalizePath(target)
	}
	return path.Clean(path.Join(baseDir, target))
}
