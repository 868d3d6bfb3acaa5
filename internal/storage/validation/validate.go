// Package validation enforces the pre-upload file checks: a size ceiling and
// a MIME type allow-list. Checks run against declared metadata only; file
// content is never inspected.
package validation

import "fmt"

// MaxFileSize is the upload size ceiling (100MB).
const MaxFileSize = 100 * 1024 * 1024

// FileMeta describes the file as declared by the caller.
type FileMeta struct {
	Name string
	Size int64
	MIME string
}

// Result reports whether the file may be uploaded. Error is empty when
// Valid is true.
type Result struct {
	Valid bool
	Error string
}

// allowedTypes is the fixed allow-list of uploadable MIME types.
var allowedTypes = map[string]struct{}{
	// images
	"image/jpeg":    {},
	"image/png":     {},
	"image/gif":     {},
	"image/webp":    {},
	"image/svg+xml": {},
	// documents
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/plain": {},
	// data
	"text/csv":         {},
	"application/json": {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	// video
	"video/mp4":       {},
	"video/webm":      {},
	"video/quicktime": {},
	// audio
	"audio/mpeg": {},
	"audio/wav":  {},
	"audio/ogg":  {},
}

// Validate applies the upload rules in order; the first failure wins.
// It is a pure function of the declared metadata.
func Validate(file *FileMeta) Result {
	if file == nil {
		return Result{Valid: false, Error: "No file selected"}
	}

	if file.Size > MaxFileSize {
		mb := float64(file.Size) / (1024 * 1024)
		return Result{Valid: false, Error: fmt.Sprintf("File size exceeds 100MB limit (current: %.2f MB)", mb)}
	}

	if _, ok := allowedTypes[file.MIME]; !ok {
		mime := file.MIME
		if mime == "" {
			mime = "unknown"
		}
		return Result{Valid: false, Error: fmt.Sprintf("File type %s is not supported", mime)}
	}

	return Result{Valid: true}
}
