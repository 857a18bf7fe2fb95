package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"

	errs "github.com/tidepool-org/librelinkup/errors"
)

const (
	loginPath       = "/llu/auth/login"
	connectionsPath = "/llu/connections"

	productName = "llu.android"

	HeaderAccountID = "account-id"
	HeaderProduct   = "product"
	HeaderVersion   = "version"
)

//go:generate go tool mockgen -source=./request.go -destination=./test/mock_doer.go -package test

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

var defaultHeaders = map[string]string{
	"accept-encoding": "gzip",
	"cache-control":   "no-cache",
	"connection":      "Keep-Alive",
	"content-type":    "application/json",
	HeaderProduct:     productName,
}

func (c *Client) newRequest(ctx context.Context, method string, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("unable to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("unable to create request: %w", err)
	}

	for name, value := range defaultHeaders {
		req.Header.Set(name, value)
	}
	req.Header.Set(HeaderVersion, c.version)
	if c.token != nil {
		c.token.SetAuthHeader(req)
	}
	if c.accountIDHash != "" {
		req.Header.Set(HeaderAccountID, c.accountIDHash)
	}

	return req, nil
}

// do sends the request and returns the response with its fully read, decompressed body.
func (c *Client) do(req *http.Request) (*http.Response, []byte, error) {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	c.logger.Debugw("librelinkup request", "method", req.Method, "url", req.URL.String(), "status", res.StatusCode)

	body, err := readBody(res)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read response of %s %s: %w", req.Method, req.URL.Path, err)
	}

	return res, body, nil
}

// get performs an authenticated GET and translates non-success statuses.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	res, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode == http.StatusTooManyRequests {
		return nil, errs.NewRateLimitError(res.Header.Get("Retry-After"))
	}
	if !isSuccess(res.StatusCode) {
		return nil, errs.NewHttpError(res.StatusCode, body)
	}

	return body, nil
}

func readBody(res *http.Response) ([]byte, error) {
	if !strings.EqualFold(res.Header.Get("Content-Encoding"), "gzip") {
		return io.ReadAll(res.Body)
	}

	reader, err := gzip.NewReader(res.Body)
	if errors.Is(err, io.EOF) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
