// Package netx contains small HTTP helpers shared by the upload strategies:
// a raw PUT with caller-supplied headers and an unauthenticated HEAD used
// for post-upload verification and CORS inference.
package netx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// httpClient is a test seam; tests may replace it with a client pointing at
// an httptest server.
var httpClient = &http.Client{}

// Put issues an HTTP PUT of body to url with the given headers. Any 2xx
// status is treated as success; otherwise the response status and body are
// folded into the returned error.
func Put(ctx context.Context, url string, body []byte, headers map[string]string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}

// Head issues an unauthenticated HEAD request and reports whether the object
// is publicly reachable. A non-2xx status counts as unreachable; only
// transport-level failures are returned as errors.
func Head(ctx context.Context, url string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode <= 299, nil
}
