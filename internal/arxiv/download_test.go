// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

const fakePDFContent = "%PDF-1.4 fake"

func newPDFServer(t *testing.T) (*httptest.Server, func()) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ".pdf") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		fmt.Fprint(w, fakePDFContent)
	}))
	orig := PDFBase
	PDFBase = ts.URL + "/pdf/"
	return ts, func() {
		PDFBase = orig
		ts.Close()
	}
}

func TestDownloadPDF(t *testing.T) {
	_, restore := newPDFServer(t)
	defer restore()

	pdf, err := DownloadPDF(http.DefaultClient, "2101.00001", testConfig())
	if err != nil {
		t.Fatalf("DownloadPDF: %v", err)
	}

	if !strings.HasSuffix(pdf.Path, ".pdf") {
		t.Errorf("temp file %q lacks .pdf suffix", pdf.Path)
	}

	data, err := os.ReadFile(pdf.Path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(data) != fakePDFContent {
		t.Errorf("content = %q, want %q", string(data), fakePDFContent)
	}

	if err := pdf.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := os.Stat(pdf.Path); !os.IsNotExist(err) {
		t.Errorf("temp file %q still exists after Close", pdf.Path)
	}
}

func TestDownloadPDFNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer ts.Close()
	orig := PDFBase
	PDFBase = ts.URL + "/pdf/"
	defer func() { PDFBase = orig }()

	_, err := DownloadPDF(http.DefaultClient, "2101.00001", testConfig())
	if err == nil {
		t.Fatal("expected error for HTTP 404")
	}
	if !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("error = %q, want mention of HTTP 404", err.Error())
	}
}
