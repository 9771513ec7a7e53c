package webcams

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Payload is a decoded response body: maps, slices and scalars exactly as
// the service sent them. Numbers are kept as json.Number.
type Payload = any

// maxBodySnippet bounds the body excerpt kept on a DecodeError
const maxBodySnippet = 512

// Executor performs one request against a fully formed URL and decodes
// the response.
type Executor interface {
	Execute(ctx context.Context, fullURL string) (Payload, error)
}

// HTTPExecutor is the default Executor, backed by an *http.Client
type HTTPExecutor struct {
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// NewHTTPExecutor creates an executor using httpClient. A nil httpClient
// means http.DefaultClient.
func NewHTTPExecutor(httpClient *http.Client, userAgent string, logger zerolog.Logger) *HTTPExecutor {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPExecutor{
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// Execute issues a GET for fullURL and decodes the body as JSON.
// The status code is not interpreted; an error body that decodes is
// returned like any other payload.
func (e *HTTPExecutor) Execute(ctx context.Context, fullURL string) (Payload, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &TransportError{URL: RedactURL(fullURL), Err: fmt.Errorf("failed to create request: %w", redactError(err))}
	}

	req.Header.Set("Accept", "application/json")
	if e.userAgent != "" {
		req.Header.Set("User-Agent", e.userAgent)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: RedactURL(fullURL), Err: redactError(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: RedactURL(fullURL), Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	e.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("Received webcams.travel response")

	if resp.StatusCode >= http.StatusBadRequest {
		e.logger.Warn().
			Int("status", resp.StatusCode).
			Msg("webcams.travel returned an error status")
	}

	payload, err := decodePayload(body)
	if err != nil {
		return nil, &DecodeError{
			StatusCode: resp.StatusCode,
			Body:       snippet(body),
			Err:        err,
		}
	}

	return payload, nil
}

// decodePayload decodes exactly one JSON value from body
func decodePayload(body []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty response body")
		}
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}

	return payload, nil
}

func snippet(body []byte) string {
	if len(body) > maxBodySnippet {
		return string(body[:maxBodySnippet])
	}
	return string(body)
}

// RedactURL hides the developer ID in rawURL. It works on the raw string
// so that unparseable URLs are covered and parameter order is kept.
func RedactURL(rawURL string) string {
	base, query, found := strings.Cut(rawURL, "?")
	if !found {
		return rawURL
	}

	pairs := strings.Split(query, "&")
	for i, pair := range pairs {
		key, _, _ := strings.Cut(pair, "=")
		if name, err := url.QueryUnescape(key); err == nil && name == ParamDevID {
			pairs[i] = ParamDevID + "=REDACTED"
		}
	}
	return base + "?" + strings.Join(pairs, "&")
}

// redactError strips the developer ID from the URL embedded in errors
// returned by net/http.
func redactError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = RedactURL(ue.URL)
	}
	return err
}
