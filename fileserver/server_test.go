package fileserver

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/phayes/freeport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func newRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "hello.txt"), []byte("hello world"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "style.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "readme.md"), []byte("# docs"), 0o644))
	return root
}

func TestServer_Handler(t *testing.T) {
	root := newRoot(t)
	srv := New(WithRoot(root), WithLogger(zap.NewNop().Sugar()))

	var testCases = []struct {
		description string
		method      string
		path        string
		status      int
		body        string
		contentType string
	}{
		{description: "existing file", method: http.MethodGet, path: "/hello.txt", status: http.StatusOK, body: "hello world", contentType: "text/plain"},
		{description: "mime inference", method: http.MethodGet, path: "/style.css", status: http.StatusOK, contentType: "text/css"},
		{description: "nested file", method: http.MethodGet, path: "/docs/readme.md", status: http.StatusOK, body: "# docs"},
		{description: "missing file", method: http.MethodGet, path: "/absent.txt", status: http.StatusNotFound},
		{description: "root listing", method: http.MethodGet, path: "/", status: http.StatusOK, body: "hello.txt"},
		{description: "directory redirect", method: http.MethodGet, path: "/docs", status: http.StatusMovedPermanently},
		{description: "head", method: http.MethodHead, path: "/hello.txt", status: http.StatusOK},
		{description: "post rejected", method: http.MethodPost, path: "/hello.txt", status: http.StatusMethodNotAllowed},
		{description: "delete rejected", method: http.MethodDelete, path: "/hello.txt", status: http.StatusMethodNotAllowed},
	}

	for _, testCase := range testCases {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(testCase.method, testCase.path, nil)
		srv.Handler().ServeHTTP(recorder, request)

		assert.EqualValues(t, testCase.status, recorder.Code, testCase.description)
		if testCase.body != "" {
			assert.Contains(t, recorder.Body.String(), testCase.body, testCase.description)
		}
		if testCase.contentType != "" {
			assert.True(t, strings.HasPrefix(recorder.Header().Get("Content-Type"), testCase.contentType), testCase.description)
		}
	}
}

func TestServer_ListenAndServe(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	port, err := freeport.GetFreePort()
	require.NoError(t, err)
	srv := New(WithRoot(newRoot(t)), WithPort(port), WithLogger(zap.NewNop().Sugar()))
	require.NoError(t, srv.Listen())
	assert.EqualValues(t, port, srv.Port())

	done := make(chan error, 1)
	go func() { done <- srv.Serve() }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: 5 * time.Second}
	baseURL := "http://127.0.0.1:" + strconv.Itoa(port)

	resp, err := client.Get(baseURL + "/hello.txt")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	assert.EqualValues(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, "hello world", string(body))

	resp, err = client.Get(baseURL + "/nope")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.EqualValues(t, http.StatusNotFound, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.NoError(t, <-done)
}

func TestServer_ListenPortInUse(t *testing.T) {
	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port
	srv := New(WithPort(port), WithLogger(zap.NewNop().Sugar()))
	err = srv.Listen()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), strconv.Itoa(port))
	}
}

func TestServer_ServeWithoutListen(t *testing.T) {
	srv := New(WithLogger(zap.NewNop().Sugar()))
	assert.Error(t, srv.Serve())
	assert.EqualValues(t, "", srv.Addr())
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestServer_Metrics(t *testing.T) {
	srv := New(
		WithRoot(newRoot(t)),
		WithAddress("127.0.0.1"),
		WithMetrics("127.0.0.1:0"),
		WithLogger(zap.NewNop().Sugar()),
	)
	require.NoError(t, srv.Listen())
	done := make(chan error, 1)
	go func() { done <- srv.Serve() }()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, srv.Shutdown(ctx))
		assert.NoError(t, <-done)
	}()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + srv.Addr() + "/hello.txt")
	require.NoError(t, err)
	_ = resp.Body.Close()

	// the metrics listener starts in its own goroutine
	var text string
	require.Eventually(t, func() bool {
		resp, err := client.Get("http://" + srv.MetricsAddr() + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		text = string(data)
		return resp.StatusCode == http.StatusOK && strings.Contains(text, `handler="files"`)
	}, 5*time.Second, 50*time.Millisecond)
	assert.Contains(t, text, "http_request_duration_seconds")

	// metrics are not reachable through the file listener
	resp, err = client.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.EqualValues(t, http.StatusNotFound, resp.StatusCode)
}
