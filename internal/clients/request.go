package clients

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"resty.dev/v3"

	"github.com/pwnholic/xkcdown/internal"
)

const (
	stageFetchMetadata = "fetch metadata"
	stageFetchImage    = "fetch image"
)

type ClientRequest struct {
	Client  *resty.Client
	timeout time.Duration
}

type HTTPClientOptions struct {
	// Timeout bounds each request as a whole, connect through body read.
	// Zero disables the bound.
	Timeout   time.Duration
	UserAgent string
}

func NewClientRequest(t *HTTPClientOptions) *ClientRequest {
	client := resty.New().SetRetryCount(0)
	if t.UserAgent != "" {
		client.SetHeader("User-Agent", t.UserAgent)
	}

	return &ClientRequest{
		Client:  client,
		timeout: t.Timeout,
	}
}

func (c *ClientRequest) Close() error {
	return c.Client.Close()
}

func statusFailure(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= 200 && code < 300 {
		return nil
	}
	switch code {
	case http.StatusNotFound:
		return fmt.Errorf("comic not found (%s)", resp.Status())
	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limited (%s)", resp.Status())
	case http.StatusForbidden:
		return fmt.Errorf("access forbidden (%s)", resp.Status())
	case http.StatusServiceUnavailable:
		return fmt.Errorf("service unavailable (%s)", resp.Status())
	}
	return fmt.Errorf("unexpected status %s", resp.Status())
}

// get performs one GET and returns the full body. The timeout context stays
// alive until the body has been read.
func (c *ClientRequest) get(ctx context.Context, stage, rawURL string) ([]byte, http.Header, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	internal.DebugLog("GET %s", rawURL)
	response, err := c.Client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		if response != nil && response.Body != nil {
			_ = response.Body.Close()
		}
		return nil, nil, internal.NewStageError(internal.NetworkError, stage, fmt.Errorf("GET %s: %w", rawURL, err))
	}
	defer response.Body.Close()

	if err := statusFailure(response); err != nil {
		return nil, nil, internal.NewStageError(internal.NetworkError, stage, fmt.Errorf("GET %s: %w", rawURL, err))
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, nil, internal.NewStageError(internal.NetworkError, stage, fmt.Errorf("read body of %s: %w", rawURL, err))
	}
	internal.DebugLog("GET %s: %s, %d bytes", rawURL, response.Status(), len(body))
	return body, response.Header(), nil
}

// FetchComicJSON returns the metadata document at rawURL as UTF-8 text.
func (c *ClientRequest) FetchComicJSON(ctx context.Context, rawURL string) (string, error) {
	body, header, err := c.get(ctx, stageFetchMetadata, rawURL)
	if err != nil {
		return "", err
	}

	text, err := decodeText(body, header.Get("Content-Type"))
	if err != nil {
		return "", internal.NewStageError(internal.ParseError, stageFetchMetadata, err)
	}
	return text, nil
}

// FetchImage returns the raw bytes served at rawURL.
func (c *ClientRequest) FetchImage(ctx context.Context, rawURL string) ([]byte, error) {
	body, _, err := c.get(ctx, stageFetchImage, rawURL)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// decodeText converts body to UTF-8 using the charset declared in
// contentType. JSON without a declared charset is UTF-8.
func decodeText(body []byte, contentType string) (string, error) {
	if contentType != "" {
		if _, params, err := mime.ParseMediaType(contentType); err == nil && params["charset"] != "" {
			label := params["charset"]
			enc, name := charset.Lookup(label)
			if enc == nil {
				return "", fmt.Errorf("unsupported charset %q", label)
			}
			if name != "utf-8" {
				decoded, err := io.ReadAll(enc.NewDecoder().Reader(bytes.NewReader(body)))
				if err != nil {
					return "", fmt.Errorf("decode %s body: %w", name, err)
				}
				body = decoded
			}
		}
	}

	if !utf8.Valid(body) {
		return "", errors.New("response body is not valid UTF-8 text")
	}
	return string(body), nil
}
