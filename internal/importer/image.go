package importer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/yuanying/pptximport/internal/pptx"
)

// qualityTier holds the processing parameters for one ImageQuality value.
// A zero maxWidth means no resampling.
type qualityTier struct {
	maxWidth    int
	jpegQuality int
	passthrough bool
}

var qualityTiers = map[ImageQuality]qualityTier{
	QualityLow:    {maxWidth: 640, jpegQuality: 60},
	QualityMedium: {maxWidth: 1024, jpegQuality: 80},
	QualityHigh:   {passthrough: true},
}

// processImages runs every extracted image through the quality tier and
// the size cap, encoding survivors as data URLs. Undecodable bytes pass
// through unmodified with a warning; images still over the cap after
// processing are dropped. Returns the warnings and drop count.
func processImages(records []pptx.SlideRecord, opts Options) ([]string, int) {
	tier := qualityTiers[normalizeQuality(opts.ImageQuality)]
	maxBytes := opts.MaxImageSizeMB * 1024 * 1024

	var warnings []string
	skipped := 0

	for i := range records {
		kept := records[i].Images[:0]
		for _, img := range records[i].Images {
			data, contentType, warn := transformImage(img.Data, img.ContentType, tier)
			if warn != "" {
				warnings = append(warnings, fmt.Sprintf("slide %d: image %q: %s", records[i].Index, img.Target, warn))
			}
			if maxBytes > 0 && len(data) > maxBytes {
				warnings = append(warnings, fmt.Sprintf("slide %d: image %q is %d bytes, over the %dMB limit, skipping",
					records[i].Index, img.Target, len(data), opts.MaxImageSizeMB))
				skipped++
				continue
			}
			img.DataURL = dataURL(contentType, data)
			img.Data = nil
			kept = append(kept, img)
		}
		records[i].Images = kept
	}

	return warnings, skipped
}

// transformImage applies the quality tier: resample wide images down and
// re-encode. PNG stays PNG to preserve alpha, everything else becomes
// JPEG at the tier's quality. Decode failure returns the input untouched
// with a warning.
func transformImage(input []byte, contentType string, tier qualityTier) ([]byte, string, string) {
	if tier.passthrough {
		return input, contentType, ""
	}

	src, format, err := image.Decode(bytes.NewReader(input))
	if err != nil {
		return input, contentType, fmt.Sprintf("decode failed: %v, passing through", err)
	}

	if tier.maxWidth > 0 && src.Bounds().Dx() > tier.maxWidth {
		src = imaging.Resize(src, tier.maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if strings.EqualFold(format, "png") {
		encoder := png.Encoder{CompressionLevel: png.BestCompression}
		if err := encoder.Encode(&buf, src); err != nil {
			return input, contentType, fmt.Sprintf("png encode failed: %v, passing through", err)
		}
		return buf.Bytes(), "image/png", ""
	}

	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: tier.jpegQuality}); err != nil {
		return input, contentType, fmt.Sprintf("jpeg encode failed: %v, passing through", err)
	}
	return buf.Bytes(), "image/jpeg", ""
}

// dataURL encodes media bytes as a base64 data URL.
func dataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
