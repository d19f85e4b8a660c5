package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AllowedImageExtensions maps accepted upload extensions to the media
// type handed to the vision classifier.
var AllowedImageExtensions = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"webp": "image/webp",
}

// ImageExtension returns the lowercased extension of filename without
// the dot, or "" if the file is not an allowed image type.
func ImageExtension(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := AllowedImageExtensions[ext]; !ok {
		return ""
	}
	return ext
}

// SanitizeFilename strips path components and replaces anything outside
// a conservative character set, so user-supplied names are safe to use
// on disk and in URLs.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		out = "upload"
	}
	return out
}

// UploadFilename builds a collision-resistant name for a stored upload:
// a random hex prefix joined with the sanitized original name.
func UploadFilename(original string) string {
	return fmt.Sprintf("%s_%s", strings.ReplaceAll(uuid.NewString(), "-", ""), SanitizeFilename(original))
}
