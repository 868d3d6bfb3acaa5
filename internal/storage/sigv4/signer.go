// Package sigv4 builds AWS Signature Version 4 authorization headers for
// raw HTTP object PUTs, without going through the SDK request pipeline.
// Used by the manual-header upload strategy and the direct-PUT provider.
package sigv4

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

const (
	algorithm  = "AWS4-HMAC-SHA256"
	timeFormat = "20060102T150405Z"
	dateFormat = "20060102"
)

// Signer signs object-storage requests for one credential pair.
type Signer struct {
	accessKey string
	secretKey string
	region    string
	service   string

	// now is a test seam.
	now func() time.Time
}

// New constructs a Signer for the s3 service in the given region.
func New(accessKey, secretKey, region string) *Signer {
	return &Signer{
		accessKey: accessKey,
		secretKey: secretKey,
		region:    region,
		service:   "s3",
		now:       time.Now,
	}
}

// SignPut returns the full header set for a PUT of payload to u: the
// caller-supplied headers (e.g. Content-Type, x-amz-acl) plus X-Amz-Date,
// X-Amz-Content-Sha256, and the Authorization header covering all of them.
func (s *Signer) SignPut(u *url.URL, payload []byte, extra map[string]string) map[string]string {
	t := s.now().UTC()
	amzDate := t.Format(timeFormat)
	dateStamp := t.Format(dateFormat)

	payloadHash := sha256Hex(payload)

	headers := make(map[string]string, len(extra)+3)
	for k, v := range extra {
		headers[strings.ToLower(k)] = v
	}
	headers["host"] = u.Host
	headers["x-amz-date"] = amzDate
	headers["x-amz-content-sha256"] = payloadHash

	signedHeaders := signedHeaderList(headers)
	canonicalRequest := buildCanonicalRequest("PUT", u, headers, signedHeaders, payloadHash)
	stringToSign := buildStringToSign(amzDate, dateStamp, s.region, s.service, canonicalRequest)
	signature := s.calculateSignature(dateStamp, stringToSign)

	credentialScope := fmt.Sprintf("%s/%s/%s/aws4_request", dateStamp, s.region, s.service)
	headers["Authorization"] = fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		algorithm, s.accessKey, credentialScope, signedHeaders, signature)

	return headers
}

// signedHeaderList returns the lowercase header names joined by ';' in
// sorted order, as required by the canonical request.
func signedHeaderList(headers map[string]string) string {
	names := make([]string, 0, len(headers))
	for k := range headers {
		names = append(names, strings.ToLower(k))
	}
	sort.Strings(names)
	return strings.Join(names, ";")
}

func buildCanonicalRequest(method string, u *url.URL, headers map[string]string, signedHeaders, payloadHash string) string {
	var canonicalHeaders strings.Builder
	for _, h := range strings.Split(signedHeaders, ";") {
		canonicalHeaders.WriteString(h)
		canonicalHeaders.WriteString(":")
		canonicalHeaders.WriteString(canonicalHeaderValue(headers[h]))
		canonicalHeaders.WriteString("\n")
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n%s",
		method, canonicalURI(u.Path), canonicalQueryString(u.Query()),
		canonicalHeaders.String(), signedHeaders, payloadHash)
}

func buildStringToSign(amzDate, dateStamp, region, service, canonicalRequest string) string {
	credentialScope := fmt.Sprintf("%s/%s/%s/aws4_request", dateStamp, region, service)
	return fmt.Sprintf("%s\n%s\n%s\n%s",
		algorithm, amzDate, credentialScope, sha256Hex([]byte(canonicalRequest)))
}

func (s *Signer) calculateSignature(dateStamp, stringToSign string) string {
	kDate := hmacSHA256([]byte("AWS4"+s.secretKey), []byte(dateStamp))
	kRegion := hmacSHA256(kDate, []byte(s.region))
	kService := hmacSHA256(kRegion, []byte(s.service))
	kSigning := hmacSHA256(kService, []byte("aws4_request"))
	return hex.EncodeToString(hmacSHA256(kSigning, []byte(stringToSign)))
}

func canonicalQueryString(query url.Values) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		for _, v := range query[k] {
			parts = append(parts, uriEncode(k)+"="+uriEncode(v))
		}
	}
	return strings.Join(parts, "&")
}

func hmacSHA256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// uriEncode encodes a string per SigV4 rules (spaces as %20, not +).
func uriEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// canonicalURI normalizes a URI path by URI-encoding each path segment.
func canonicalURI(path string) string {
	if path == "" || path == "/" {
		return "/"
	}
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = uriEncode(seg)
	}
	return strings.Join(segments, "/")
}

// canonicalHeaderValue trims and collapses sequential whitespace.
func canonicalHeaderValue(v string) string {
	return strings.Join(strings.Fields(v), " ")
}
