package netx

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPut(t *testing.T) {
	body := []byte("hello, s3")

	t.Run("success 200 OK", func(t *testing.T) {
		var gotBody []byte
		var gotCT string
		var gotACL string
		var gotMethod string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			gotACL = r.Header.Get("x-amz-acl")
			b, _ := io.ReadAll(r.Body)
			_ = r.Body.Close()
			gotBody = b
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		err := Put(context.Background(), ts.URL+"/bucket/key", body, map[string]string{
			"Content-Type": "text/csv",
			"x-amz-acl":    "public-read",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotMethod != http.MethodPut {
			t.Fatalf("method = %q, want PUT", gotMethod)
		}
		if gotCT != "text/csv" {
			t.Fatalf("Content-Type = %q, want text/csv", gotCT)
		}
		if gotACL != "public-read" {
			t.Fatalf("x-amz-acl = %q, want public-read", gotACL)
		}
		if !bytes.Equal(gotBody, body) {
			t.Fatalf("body = %q, want %q", string(gotBody), string(body))
		}
	})

	t.Run("non-2xx -> error with status and body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("AccessDenied"))
		}))
		defer ts.Close()

		err := Put(context.Background(), ts.URL, body, nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "403") {
			t.Fatalf("error = %q, want to contain 403", err.Error())
		}
		if !strings.Contains(err.Error(), "AccessDenied") {
			t.Fatalf("error = %q, want to contain response body", err.Error())
		}
	})

	t.Run("transport error", func(t *testing.T) {
		err := Put(context.Background(), "http://127.0.0.1:0/never", body, nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestHead(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodHead {
				t.Errorf("method = %q, want HEAD", r.Method)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		ok, err := Head(context.Background(), ts.URL+"/obj")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("ok = false, want true")
		}
	})

	t.Run("404 counts as unreachable, not error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		ok, err := Head(context.Background(), ts.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatal("ok = true, want false")
		}
	})

	t.Run("transport error is returned", func(t *testing.T) {
		_, err := Head(context.Background(), "http://127.0.0.1:0/never")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
