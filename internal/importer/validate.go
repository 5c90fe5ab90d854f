package importer

import (
	"fmt"
	"strings"
)

// maxFileSize is the hard input size limit.
const maxFileSize = 100 * 1024 * 1024

// validateInput runs every pre-flight check and collects all violations;
// checks are not short-circuited so the caller sees the full list.
func validateInput(name string, size int) []string {
	var errs []string

	if !strings.HasSuffix(strings.ToLower(name), ".pptx") {
		errs = append(errs, fmt.Sprintf("unsupported file extension: %q is not a .pptx file", name))
	}
	if size == 0 {
		errs = append(errs, "file is empty")
	}
	if size > maxFileSize {
		errs = append(errs, fmt.Sprintf("file size %d exceeds the %dMB limit", size, maxFileSize/(1024*1024)))
	}

	return errs
}
