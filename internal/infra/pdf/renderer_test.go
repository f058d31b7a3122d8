//go:build unit

package pdf_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/infra/pdf"
	"workshop-quotes/internal/pkg/errs"
	"workshop-quotes/internal/usecase/shared"
	"workshop-quotes/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRenderer_Render(t *testing.T) {
	q, err := builder.NewQuoteBuilder().BuildInStatus(quote.StatusSent)
	require.NoError(t, err)
	snapshot := q.Snapshot()

	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/render/quote", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &received))
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer srv.Close()

	doc, err := pdf.NewHTTPRenderer(srv.URL, time.Second).Render(context.Background(), snapshot)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Equal(t, "ORC-000001.pdf", doc.Filename)
	assert.Equal(t, []byte("%PDF-1.7 fake"), doc.Body)

	assert.Equal(t, snapshot.Number, received["number"])
	assert.EqualValues(t, 15000, received["total_cents"])
	assert.Len(t, received["items"], 2)
	assert.NotContains(t, received, "public_token")
	raw, _ := json.Marshal(received)
	assert.NotContains(t, string(raw), snapshot.Link.Token)
}

func TestHTTPRenderer_Failures(t *testing.T) {
	q, err := builder.NewQuoteBuilder().BuildDomain()
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err = pdf.NewHTTPRenderer(srv.URL, time.Second).Render(context.Background(), q.Snapshot())
	require.Error(t, err)
	assert.True(t, errs.Is(err, shared.ErrRendererUnavailable))

	srv.Close()
	_, err = pdf.NewHTTPRenderer(srv.URL, 200*time.Millisecond).Render(context.Background(), q.Snapshot())
	require.Error(t, err)
	assert.True(t, errs.Is(err, shared.ErrRendererUnavailable))

	_, err = pdf.Unavailable{}.Render(context.Background(), q.Snapshot())
	assert.True(t, errs.Is(err, shared.ErrRendererUnavailable))
}

func TestHTTPRenderer_DocumentSizeLimit(t *testing.T) {
	q, err := builder.NewQuoteBuilder().BuildDomain()
	require.NoError(t, err)

	testCases := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "success: document at the limit", size: pdf.MaxDocumentSize},
		{name: "error: document over the limit", size: pdf.MaxDocumentSize + 1, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/pdf")
				_, _ = w.Write(bytes.Repeat([]byte{'%'}, tc.size))
			}))
			defer srv.Close()

			doc, err := pdf.NewHTTPRenderer(srv.URL, 10*time.Second).Render(context.Background(), q.Snapshot())
			if tc.wantErr {
				assert.Nil(t, doc)
				assert.True(t, errs.Is(err, shared.ErrRendererUnavailable), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, doc.Body, tc.size)
		})
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "ORC-000042.pdf", pdf.Filename(quote.Snapshot{Number: "ORC-000042", Version: 1}))
	assert.Equal(t, "ORC-000042-v3.pdf", pdf.Filename(quote.Snapshot{Number: "ORC-000042", Version: 3}))
}
