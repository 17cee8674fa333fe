// Package upstream is the typed client for the HR core REST API. Every
// method builds one HTTP request, attaches the caller's bearer token from
// the request context, and decodes the JSON response into an explicit type.
// The HR core is authoritative: a rejection from it stands even when local
// checks passed, so its error payloads (including per-field messages) are
// preserved on the way back to the caller.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/contextutil"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger ...*zap.Logger) *Client {
	l := zap.L().Named("upstream")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("upstream")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     l,
	}
}

// upstreamErrorBody is the HR core's error payload. Field errors arrive as
// {"field": "...", "defaultMessage": "..."} pairs on rejected submissions.
type upstreamErrorBody struct {
	Message string                `json:"message"`
	Errors  []apperror.FieldError `json:"errors"`
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do issues one request and decodes a JSON response into out (out may be
// nil for calls whose body the caller ignores).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	raw, _, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Error("upstream response decode failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return apperror.Wrap(err, apperror.CodeUpstreamError, "Unexpected response from the HR service", http.StatusBadGateway)
	}
	return nil
}

// doRaw issues one request and returns the raw response body, for binary
// payloads such as the CSV export.
func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body any) ([]byte, string, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, "", err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reqBody)
	if err != nil {
		return nil, "", err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := contextutil.GetAccessToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, "", apperror.ErrUpstreamUnavailable.WithErr(err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("upstream response body close failed", zap.Error(cerr))
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", apperror.Wrap(err, apperror.CodeUpstreamError, "Failed reading the HR service response", http.StatusBadGateway)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, "", c.mapError(method, path, resp.StatusCode, raw)
	}

	return raw, resp.Header.Get("Content-Type"), nil
}

// mapError turns a non-2xx upstream response into an AppError, keeping the
// HR core's message and field errors so forms can surface them verbatim.
func (c *Client) mapError(method, path string, status int, raw []byte) error {
	var body upstreamErrorBody
	_ = json.Unmarshal(raw, &body)

	message := body.Message
	if message == "" {
		message = fmt.Sprintf("HR service returned status %d", status)
	}

	c.logger.Warn("upstream rejected request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.String("message", message),
		zap.Int("field_errors", len(body.Errors)),
	)

	code := apperror.CodeUpstreamError
	switch status {
	case http.StatusBadRequest:
		code = apperror.CodeInvalidInput
	case http.StatusUnauthorized:
		code = apperror.CodeUnauthorized
	case http.StatusForbidden:
		code = apperror.CodeForbidden
	case http.StatusNotFound:
		code = apperror.CodeNotFound
	case http.StatusConflict:
		code = apperror.CodeConflict
	}

	appErr := apperror.New(code, message, status)
	if len(body.Errors) > 0 {
		appErr = appErr.WithFields(body.Errors)
	}
	return appErr
}

// PageQuery carries the list-endpoint paging contract: zero-based page,
// page size and sort direction.
type PageQuery struct {
	Page int
	Size int
	Sort string
}

func (p PageQuery) apply(q url.Values) {
	q.Set("page", strconv.Itoa(p.Page))
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
}

// Page is the paginated response shape shared by all list endpoints.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}
