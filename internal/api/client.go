// Package api is the HTTP client for the study backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/prepgenius/prepgenius/internal/quiz"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// Client talks to the backend. Requests have no timeout and are never
// retried.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	logger    *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "prepgenius",
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "api")
	return c
}

// BaseURL returns the backend root this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Dashboard fetches the progress summary.
func (c *Client) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, "")
	if err != nil {
		return nil, err
	}
	var d DashboardSummary
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, &TransportError{Op: "decode dashboard", Err: err}
	}
	return &d, nil
}

// History fetches recent activity.
func (c *Client) History(ctx context.Context) ([]HistoryEntry, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/history", nil, "")
	if err != nil {
		return nil, err
	}
	var resp historyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransportError{Op: "decode history", Err: err}
	}
	return resp.Items, nil
}

// Notes uploads a document and returns generated study notes.
func (c *Client) Notes(ctx context.Context, req NotesRequest) (string, error) {
	env, err := c.postForm(ctx, "/api/notes", req.FilePath, map[string]string{"prompt": req.Prompt})
	if err != nil {
		return "", err
	}
	return env.Notes, nil
}

// Questions uploads a document and returns descriptive exam questions as text.
func (c *Client) Questions(ctx context.Context, req QuestionsRequest) (string, error) {
	env, err := c.postForm(ctx, "/api/questions", req.FilePath, map[string]string{"prompt": req.Prompt})
	if err != nil {
		return "", err
	}
	return rawText(env.Questions), nil
}

// Quiz uploads a document and returns generated multiple-choice questions.
func (c *Client) Quiz(ctx context.Context, req QuizRequest) ([]quiz.Question, error) {
	const path = "/api/quiz"

	body, err := c.buildForm(req.FilePath, map[string]string{"numQuestions": req.NumQuestions})
	if err != nil {
		return nil, err
	}
	raw, err := c.do(ctx, http.MethodPost, path, body.buf, body.contentType)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(path, raw)
	if err != nil {
		return nil, err
	}
	if err := validateQuizPayload(raw); err != nil {
		return nil, &TransportError{Op: "decode quiz", Err: err}
	}

	var payload struct {
		Questions []QuizQuestion `json:"questions"`
	}
	if len(env.Questions) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, &TransportError{Op: "decode quiz", Err: err}
		}
	}
	return ToQuestions(payload.Questions), nil
}

// Chat asks the tutor a question.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	env, err := c.postJSON(ctx, "/api/chat", req)
	if err != nil {
		return "", err
	}
	return env.Answer, nil
}

// Mentor requests a day-by-day study plan.
func (c *Client) Mentor(ctx context.Context, req MentorRequest) (string, error) {
	env, err := c.postJSON(ctx, "/api/mentor", req)
	if err != nil {
		return "", err
	}
	return env.Plan, nil
}

type formBody struct {
	buf         *bytes.Buffer
	contentType string
}

// buildForm encodes fields and, when filePath is set, the file under "file".
func (c *Client) buildForm(filePath string, fields map[string]string) (*formBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if filePath != "" {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, &TransportError{Op: "read file", Err: err}
		}
		defer f.Close()

		part, err := w.CreateFormFile("file", filepath.Base(filePath))
		if err != nil {
			return nil, &TransportError{Op: "encode form", Err: err}
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, &TransportError{Op: "read file", Err: err}
		}
	}

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, &TransportError{Op: "encode form", Err: err}
		}
	}
	if err := w.Close(); err != nil {
		return nil, &TransportError{Op: "encode form", Err: err}
	}
	return &formBody{buf: &buf, contentType: w.FormDataContentType()}, nil
}

func (c *Client) postForm(ctx context.Context, path, filePath string, fields map[string]string) (*envelope, error) {
	body, err := c.buildForm(filePath, fields)
	if err != nil {
		return nil, err
	}
	raw, err := c.do(ctx, http.MethodPost, path, body.buf, body.contentType)
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(path, raw)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, &TransportError{Op: "encode request", Err: err}
	}
	raw, err := c.do(ctx, http.MethodPost, path, bytes.NewReader(data), "application/json")
	if err != nil {
		return nil, err
	}
	return decodeEnvelope(path, raw)
}

// do sends one request and returns the body. The status code is not
// inspected: error responses still carry a JSON body with an "error" field.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	reqID := uuid.NewString()
	logger := c.logger.With("request_id", reqID, "method", method, "path", path)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("request failed", "err", err)
		return nil, &TransportError{Op: fmt.Sprintf("%s %s", method, path), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn("read response failed", "err", err)
		return nil, &TransportError{Op: "read response", Err: err}
	}

	logger.Debug("request completed", "status", resp.StatusCode, "duration", time.Since(start))
	return data, nil
}

func decodeEnvelope(path string, raw []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &TransportError{Op: "decode response", Err: err}
	}
	if msg, ok := truthyText(env.Error); ok {
		return nil, &AppError{Endpoint: path, Message: msg}
	}
	return &env, nil
}

// truthyText reports whether raw holds a truthy JSON value and returns its
// display text.
func truthyText(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "false", "0", `""`:
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s, true
	}
	return string(trimmed), true
}

// rawText returns the string form of a JSON value: strings are unquoted,
// anything else is shown as JSON and null becomes empty.
func rawText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}
