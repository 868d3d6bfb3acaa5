// Package storage defines the types shared by the storage providers:
// provider identifiers, the normalized upload result, and object key naming.
package storage

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Provider identifies a storage backend.
type Provider string

const (
	ProviderAWS  Provider = "AWS"
	ProviderOORT Provider = "OORT"
)

// UploadResult is the normalized outcome of an upload attempt. Exactly one
// of the two shapes is populated: Success=true carries URL (and Verified for
// providers that re-check the object), Success=false carries Err and an
// optional StatusCode.
type UploadResult struct {
	Success    bool
	URL        string
	Verified   bool
	Err        error
	StatusCode int
}

// Succeeded builds a success result.
func Succeeded(url string) UploadResult {
	return UploadResult{Success: true, URL: url}
}

// Failed builds a failure result.
func Failed(err error) UploadResult {
	return UploadResult{Success: false, Err: err}
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeName replaces any character outside [A-Za-z0-9._-] with '_' so a
// user-supplied filename is always a safe object key segment.
func SanitizeName(name string) string {
	return unsafeKeyChars.ReplaceAllString(name, "_")
}

// NormalizePath trims a key prefix and guarantees a single trailing slash.
// An empty prefix stays empty.
func NormalizePath(path string) string {
	p := strings.Trim(path, "/")
	if p == "" {
		return ""
	}
	return p + "/"
}

// ObjectKey builds a deterministic, collision-resistant key:
// {normalizedPath}{epochMillis}-{uuid8}-{sanitizedName}.
func ObjectKey(path, fileName string) string {
	short := uuid.NewString()[:8]
	return fmt.Sprintf("%s%d-%s-%s", NormalizePath(path), time.Now().UnixMilli(), short, SanitizeName(fileName))
}

// SimpleObjectKey builds the direct-PUT provider's key layout:
// {normalizedPath}{epochMillis}-{fileName}. The original name is kept as-is.
func SimpleObjectKey(path, fileName string) string {
	return fmt.Sprintf("%s%d-%s", NormalizePath(path), time.Now().UnixMilli(), fileName)
}
