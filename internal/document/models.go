package document

import "time"

// FormatVersion is the document model version stamped on imported
// presentations.
const FormatVersion = "1.0"

// ElementKind discriminates slide element types.
type ElementKind string

const (
	ElementText  ElementKind = "text"
	ElementImage ElementKind = "image"
	ElementShape ElementKind = "shape"
	ElementTable ElementKind = "table"
)

// PresentationDocument is the root artifact of an import.
type PresentationDocument struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slides    []Slide   `json:"slides"`
	Theme     Theme     `json:"theme"`
	Metadata  Metadata  `json:"metadata"`
	Settings  Settings  `json:"settings"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   string    `json:"version"`
}

// Slide is one slide of a presentation. Connections is reserved and left
// empty by the import pipeline.
type Slide struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Elements    []SlideElement `json:"elements"`
	Connections []string       `json:"connections"`
	Layout      string         `json:"layout"`
	Background  Background     `json:"background"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// SlideElement is one element on a slide. Properties is a free-form bag
// keyed by element kind; Content holds literal text or an image data URL.
type SlideElement struct {
	ID         string         `json:"id"`
	Kind       ElementKind    `json:"kind"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Properties map[string]any `json:"properties"`
	Content    string         `json:"content,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// Theme holds presentation-wide styling defaults.
type Theme struct {
	Name            string `json:"name"`
	FontFamily      string `json:"fontFamily"`
	PrimaryColor    string `json:"primaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
}

// Metadata holds descriptive document metadata.
type Metadata struct {
	Author      string   `json:"author"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Source      string   `json:"source"`
}

// Settings holds canvas-level presentation settings.
type Settings struct {
	SlideWidth  float64 `json:"slideWidth"`
	SlideHeight float64 `json:"slideHeight"`
	AspectRatio string  `json:"aspectRatio"`
}

// Background describes a slide background.
type Background struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

// DefaultTheme returns the theme applied uniformly to imported documents.
// The importer never infers theming from the source package.
func DefaultTheme() Theme {
	return Theme{
		Name:            "default",
		FontFamily:      "Arial",
		PrimaryColor:    "#2563eb",
		BackgroundColor: "#ffffff",
		TextColor:       "#000000",
	}
}

// DefaultSettings returns the canvas settings applied to imported documents.
func DefaultSettings() Settings {
	return Settings{
		SlideWidth:  960,
		SlideHeight: 540,
		AspectRatio: "16:9",
	}
}

// DefaultBackground returns the background applied to every imported slide.
func DefaultBackground() Background {
	return Background{Type: "color", Color: "#ffffff"}
}

// DefaultLayout is the layout assigned to every imported slide; real
// layout inheritance is not read from the source.
const DefaultLayout = "blank"
