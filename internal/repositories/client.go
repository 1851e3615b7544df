package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/discool/storefront/internal/config"
	"github.com/discool/storefront/internal/errors"
	"github.com/discool/storefront/internal/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxResponseBytes = 4 << 20

// Client talks JSON to the storefront REST backend and turns every failure into an *errors.AppError.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.Backend) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// NewClientWithHTTP lets tests point the client at an httptest server.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

type apiRequest struct {
	method string
	path   string
	// route is the low-cardinality label used for metrics, e.g. "/produto/:id".
	route   string
	query   url.Values
	token   string
	body    any
	headers map[string]string
}

func (c *Client) do(ctx context.Context, req apiRequest, out any) error {

	var body io.Reader

	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return errors.InternalError("Failed to encode backend request").WithError(err)
		}

		body = bytes.NewReader(payload)
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return errors.InternalError("Failed to build backend request").WithError(err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	for k, v := range req.headers {
		httpReq.Header.Set(k, v)
	}

	route := req.route
	if route == "" {
		route = req.path
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.ObserveBackendCall(req.method, route, "error", time.Since(start))
		return errors.NetworkError(fmt.Errorf("%s %s: %w", req.method, route, err))
	}

	defer resp.Body.Close()

	metrics.ObserveBackendCall(req.method, route, fmt.Sprintf("%d", resp.StatusCode), time.Since(start))

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.NetworkError(fmt.Errorf("reading %s %s response: %w", req.method, route, err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return rejection(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return errors.NetworkError(fmt.Errorf("%s %s: empty response body", req.method, route))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.NetworkError(fmt.Errorf("decoding %s %s response: %w", req.method, route, err))
	}

	return nil
}

type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

// backendMessage extracts the "message" field, which may be a string or a list of strings.
func backendMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(eb.Message, &single); err == nil {
		return strings.TrimSpace(single)
	}

	var many []string
	if err := json.Unmarshal(eb.Message, &many); err == nil {
		return strings.Join(many, "; ")
	}

	return ""
}

func rejection(status int, body []byte) *errors.AppError {
	message := backendMessage(body)

	orDefault := func(fallback string) string {
		if message != "" {
			return message
		}
		return fallback
	}

	var appErr *errors.AppError

	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		appErr = errors.ValidationError(orDefault("Dados inválidos. Revise as informações e tente novamente."))
	case http.StatusUnauthorized:
		appErr = errors.UnauthorizedError(orDefault("Sua sessão expirou. Faça login novamente."))
	case http.StatusForbidden:
		appErr = errors.ForbiddenError(orDefault("Você não tem permissão para esta operação."))
	case http.StatusNotFound:
		appErr = errors.NotFoundError(orDefault("Registro não encontrado."))
	default:
		return errors.ServerRejectionError(message, status)
	}

	return appErr.WithMeta("backend_status", status)
}

func isNotFound(err error) bool {
	return errors.HasCode(err, errors.ErrCodeNotFound)
}
