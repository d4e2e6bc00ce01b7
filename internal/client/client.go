package client

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kenshaw/httplog"

	"fpp-cli/pkg/models"
)

// FPPClient talks to one Falcon Player over its local REST API. It issues
// at most one request at a time; there is no session to tear down, so a
// client is simply dropped when no longer needed.
type FPPClient struct {
	HTTP   *resty.Client
	Config ClientConfig

	// Info is the identity snapshot taken by Connect. Nil on clients
	// built with New that never queried system/info.
	Info *models.SystemInfo

	log *slog.Logger
}

type ClientConfig struct {
	Host     string        // IP address or hostname of the player
	APIKey   string        // sent as x-api-key on every request, may be empty
	Timeout  time.Duration // per-request; 0 blocks indefinitely
	Insecure bool
	Debug    bool
}

// Methods the FPP API accepts for endpoint calls.
var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodDelete: true,
}

// New builds a client bound to http://<host>/api/ without contacting the
// device. Use Connect to also take the identity snapshot.
func New(cfg ClientConfig, logger *slog.Logger) *FPPClient {
	if logger == nil {
		logger = slog.Default()
	}

	r := resty.New()
	r.SetBaseURL(fmt.Sprintf("http://%s/api", cfg.Host))
	r.SetHeader("Content-Type", "application/json")
	r.SetHeader("Accept", "application/json")
	r.SetHeader("x-api-key", cfg.APIKey)
	r.SetTimeout(cfg.Timeout)

	t := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if cfg.Insecure {
		// Self-signed certs are common on LAN devices. This silences
		// verification noise for testing; it is not a security control.
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	if cfg.Debug {
		r.SetTransport(httplog.NewPrefixedRoundTripLogger(t, func(s string, v ...interface{}) {
			logger.Debug(fmt.Sprintf(s, v...))
		}))
	} else {
		r.SetTransport(t)
	}

	return &FPPClient{
		HTTP:   r,
		Config: cfg,
		log:    logger,
	}
}

// Execute sends one request and normalizes the outcome. path is relative to
// the /api/ base. Exactly one of the return values is non-nil; every failure
// is a *models.APIError and is never retried.
func (c *FPPClient) Execute(method, path string, query map[string]string, body any) (*models.Result, error) {
	if !allowedMethods[method] {
		return nil, &models.APIError{
			Kind:    models.ErrValidation,
			Message: fmt.Sprintf("invalid HTTP method %q: must be one of GET, POST or DELETE", method),
		}
	}

	req := c.HTTP.R()
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	c.log.Debug("request", "method", method, "path", path, "params", query)

	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.Error("request failed", "method", method, "path", path, "err", err)
		return nil, &models.APIError{Kind: models.ErrNetwork, Message: models.MsgRequestFailed, Err: err}
	}

	// Decode before the status check: a malformed body is a decode error
	// no matter what the status code says.
	raw := resp.Body()
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		c.log.Error("bad response body", "method", method, "path", path,
			"status_code", resp.StatusCode(), "err", err)
		return nil, &models.APIError{Kind: models.ErrDecode, Message: models.MsgInvalidJSON, Err: err}
	}
	if data == nil {
		data = map[string]any{}
	}

	code := resp.StatusCode()
	// Prefer the reason phrase the device actually sent; non-standard
	// codes carry phrases the status registry does not know.
	reason := http.StatusText(code)
	if resp.RawResponse != nil {
		if _, phrase, ok := strings.Cut(resp.RawResponse.Status, " "); ok {
			reason = phrase
		}
	}
	if code < 200 || code > 299 {
		c.log.Error("request rejected", "method", method, "path", path,
			"status_code", code, "message", reason)
		return nil, &models.APIError{Kind: models.ErrHTTPStatus, Message: fmt.Sprintf("%d: %s", code, reason)}
	}

	c.log.Debug("response", "method", method, "path", path, "status_code", code, "message", reason)

	return &models.Result{
		StatusCode: code,
		Message:    reason,
		Data:       data,
		Raw:        raw,
	}, nil
}
