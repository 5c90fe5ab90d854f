package importer

// ImageQuality selects the processing tier applied to extracted images.
type ImageQuality string

const (
	QualityLow    ImageQuality = "low"
	QualityMedium ImageQuality = "medium"
	QualityHigh   ImageQuality = "high"
)

// Options configure one import call.
//
// PreserveFormatting is reserved: it is accepted and carried but no
// extraction branch consumes it yet, because run-level source styling is
// not extracted at all.
type Options struct {
	PreserveFormatting bool
	ImportImages       bool
	ImportShapes       bool
	ImportNotes        bool
	MaxImageSizeMB     int
	ImageQuality       ImageQuality
}

// DefaultOptions returns the options used when the caller supplies none.
func DefaultOptions() Options {
	return Options{
		PreserveFormatting: true,
		ImportImages:       true,
		ImportShapes:       true,
		ImportNotes:        true,
		MaxImageSizeMB:     10,
		ImageQuality:       QualityMedium,
	}
}

// normalizeQuality maps unknown quality values to the medium tier.
func normalizeQuality(q ImageQuality) ImageQuality {
	switch q {
	case QualityLow, QualityMedium, QualityHigh:
		return q
	}
	return QualityMedium
}
