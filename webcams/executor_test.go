package webcams

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(httpClient *http.Client) *HTTPExecutor {
	return NewHTTPExecutor(httpClient, "wct-test", zerolog.Nop())
}

func TestExecuteDecodesPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "wct-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","webcams":{"count":2,"webcam":[{"webcamid":"1010","title":"Lake"}]}}`))
	}))
	defer server.Close()

	payload, err := newTestExecutor(server.Client()).Execute(context.Background(), server.URL+"/rest?method=x")
	require.NoError(t, err)

	root, ok := payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", root["status"])

	cams := root["webcams"].(map[string]any)
	assert.Equal(t, json.Number("2"), cams["count"])
	list := cams["webcam"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "Lake", list[0].(map[string]any)["title"])
}

func TestExecuteErrorStatusPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"status":"fail","error":{"code":"1","description":"invalid devid"}}`))
	}))
	defer server.Close()

	payload, err := newTestExecutor(server.Client()).Execute(context.Background(), server.URL)
	require.NoError(t, err)

	fault := APIFault(payload)
	require.NotNil(t, fault)
	assert.Equal(t, "1", fault.Code)
	assert.Equal(t, "invalid devid", fault.Message)
}

func TestExecuteDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"php serialized", `a:1:{s:6:"status";s:2:"ok";}`},
		{"html", "<html><body>Service Unavailable</body></html>"},
		{"empty", ""},
		{"truncated", `{"status":"ok"`},
		{"trailing data", `{"status":"ok"} {"status":"ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			payload, err := newTestExecutor(server.Client()).Execute(context.Background(), server.URL)
			require.Error(t, err)
			assert.Nil(t, payload)

			assert.True(t, errors.Is(err, ErrDecode))
			assert.False(t, errors.Is(err, ErrTransport))

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, http.StatusOK, de.StatusCode)
			assert.Equal(t, tt.body, de.Body)
		})
	}
}

func TestExecuteTrailingWhitespaceAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[1,2,3]\n\n"))
	}))
	defer server.Close()

	payload, err := newTestExecutor(server.Client()).Execute(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, []any{json.Number("1"), json.Number("2"), json.Number("3")}, payload)
}

func TestExecuteConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	target := server.URL + "/rest?format=json&devid=secret-devid&method=wct.countries.list"
	server.Close()

	payload, err := newTestExecutor(nil).Execute(context.Background(), target)
	require.Error(t, err)
	assert.Nil(t, payload)

	assert.True(t, errors.Is(err, ErrTransport))
	assert.True(t, IsTransportError(err))
	assert.False(t, IsDecodeError(err))
	assert.NotContains(t, err.Error(), "secret-devid")

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Contains(t, te.URL, "devid=REDACTED")
	assert.NotContains(t, te.URL, "secret-devid")
}

func TestExecuteTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	executor := newTestExecutor(&http.Client{Timeout: 50 * time.Millisecond})
	_, err := executor.Execute(context.Background(), server.URL)
	require.Error(t, err)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.True(t, te.Timeout())
}

func TestExecuteContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestExecutor(server.Client()).Execute(ctx, server.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestExecuteInvalidURL(t *testing.T) {
	_, err := newTestExecutor(nil).Execute(context.Background(), "http://[::1]:namedport/rest?devid=abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.NotContains(t, err.Error(), "devid=abc")
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t,
		"http://api.webcams.travel/rest?format=json&devid=REDACTED&method=m",
		RedactURL("http://api.webcams.travel/rest?format=json&devid=abc&method=m"))
	assert.Equal(t, "http://host/rest?method=m", RedactURL("http://host/rest?method=m"))
	assert.Equal(t, "http://host/rest?devid=REDACTED&page=1", RedactURL("http://host/rest?devid=x%20y&page=1"))
	assert.Equal(t, "http://host/rest", RedactURL("http://host/rest"))
}
