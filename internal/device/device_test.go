package device

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// panelStub records requests the way the firmware would receive them.
type panelStub struct {
	mu       sync.Mutex
	requests []string
	uploaded []byte
	status   int
}

func (p *panelStub) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		p.requests = append(p.requests, r.Method+" "+r.URL.String())
		p.mu.Unlock()

		if p.status != 0 {
			w.WriteHeader(p.status)
			_, _ = io.WriteString(w, "fail")
			return
		}

		switch r.URL.Path {
		case "/doUpload":
			file, _, err := r.FormFile("file")
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			defer file.Close()
			data, _ := io.ReadAll(file)
			p.mu.Lock()
			p.uploaded = data
			p.mu.Unlock()
			_, _ = io.WriteString(w, "OK")
		case "/space.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"total": 1048576, "used": 262144, "free": 786432}`)
		case "/v.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"version": "smalltv-pro-1.3"}`)
		default:
			_, _ = io.WriteString(w, "OK")
		}
	})
}

func (p *panelStub) last() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.requests) == 0 {
		return ""
	}
	return p.requests[len(p.requests)-1]
}

func newTestClient(t *testing.T, stub *panelStub) *Client {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	c := New(srv.URL)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestUploadAndDisplay(t *testing.T) {
	t.Parallel()

	stub := &panelStub{}
	c := newTestClient(t, stub)

	frame := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02}
	require.NoError(t, c.UploadAndDisplay(context.Background(), "dashboard.jpg", frame))

	require.Equal(t, frame, stub.uploaded)
	require.Len(t, stub.requests, 2)
	require.Contains(t, stub.requests[0], "POST /doUpload?dir=%2Fimage%2F")
	require.Contains(t, stub.requests[1], "/set?img=%2Fimage%2Fdashboard.jpg")
}

func TestSetBrightness(t *testing.T) {
	t.Parallel()

	stub := &panelStub{}
	c := newTestClient(t, stub)

	require.NoError(t, c.SetBrightness(context.Background(), 70))
	require.Contains(t, stub.last(), "/set?brt=70")

	require.Error(t, c.SetBrightness(context.Background(), 150))
	require.Error(t, c.SetBrightness(context.Background(), -1))
}

func TestDelete(t *testing.T) {
	t.Parallel()

	stub := &panelStub{}
	c := newTestClient(t, stub)

	require.NoError(t, c.Delete(context.Background(), "old.jpg"))
	require.Contains(t, stub.last(), "/delete?file=%2Fimage%2Fold.jpg")
}

func TestSpaceAndVersion(t *testing.T) {
	t.Parallel()

	stub := &panelStub{}
	c := newTestClient(t, stub)

	info, err := c.Space(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1048576), info.Total)
	require.Equal(t, int64(786432), info.Free)

	v, err := c.Version(context.Background())
	require.NoError(t, err)
	require.Equal(t, "smalltv-pro-1.3", v)
}

func TestAPIError(t *testing.T) {
	t.Parallel()

	stub := &panelStub{status: http.StatusInternalServerError}
	c := newTestClient(t, stub)

	err := c.Upload(context.Background(), "dashboard.jpg", []byte{1})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Contains(t, apiErr.Error(), "status 500")
}

func TestAPIErrorTruncatesBody(t *testing.T) {
	t.Parallel()

	e := &APIError{Op: "upload", StatusCode: 500, Body: strings.Repeat("x", 500)}
	require.Less(t, len(e.Error()), 200)
}

func TestNewAddsScheme(t *testing.T) {
	t.Parallel()

	stub := &panelStub{}
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	host := strings.TrimPrefix(srv.URL, "http://")
	c := New(host)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Display(context.Background(), "a.jpg"))
}
