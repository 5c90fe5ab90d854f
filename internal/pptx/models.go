package pptx

// SlideRecord is the intermediate extraction result for one slide, before
// document mapping. Index is the 1-based position in manifest order.
type SlideRecord struct {
	Index  int
	Title  string
	Texts  []TextBox
	Images []ImageData
	Shapes []ShapeData
	Notes  string
}

// TextBox is one extracted text element. Position and size are synthesized
// (source transforms are not read); font styling is a fixed default.
type TextBox struct {
	ID         string
	Content    string
	X, Y       float64
	Width      float64
	Height     float64
	FontSize   int
	FontFamily string
	Color      string
}

// ImageData is one extracted picture. Data holds the raw media bytes as
// stored in the package; DataURL is filled in by the importer after image
// processing.
type ImageData struct {
	ID          string
	RelID       string
	Target      string
	ContentType string
	Data        []byte
	DataURL     string
	X, Y        float64
	Width       float64
	Height      float64
}

// ShapeData is one extracted shape primitive with its mapped type and
// fixed default styling.
type ShapeData struct {
	ID          string
	Preset      string // source prstGeom value
	Type        string // mapped internal shape type
	X, Y        float64
	Width       float64
	Height      float64
	FillColor   string
	StrokeColor string
	StrokeWidth float64
}

// Fixed defaults applied to every extracted element regardless of source
// styling. Run-level styling extraction is out of scope.
const (
	defaultFontSize    = 16
	defaultFontFamily  = "Arial"
	defaultTextColor   = "#000000"
	defaultFillColor   = "#cccccc"
	defaultStrokeColor = "#000000"
	defaultStrokeWidth = 1.0
)

// shapeTypeMap maps OOXML geometry presets to internal shape types.
// Unknown presets fall back to "rectangle".
var shapeTypeMap = map[string]string{
	"rect":      "rectangle",
	"roundRect": "rectangle",
	"ellipse":   "circle",
	"line":      "line",
	"triangle":  "triangle",
	"diamond":   "diamond",
}

func mapShapeType(preset string) string {
	if t, ok := shapeTypeMap[preset]; ok {
		return t
	}
	return "rectangle"
}
