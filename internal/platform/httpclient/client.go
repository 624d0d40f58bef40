package httpclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/riskibarqy/match-analyst/internal/platform/logging"
	"github.com/riskibarqy/match-analyst/internal/platform/resilience"
)

const (
	defaultTimeout      = 8 * time.Second
	defaultRetryBackoff = 500 * time.Millisecond
	maxResponseBodySize = 6 << 20
)

var (
	// ErrTransient marks failures worth retrying and counted by the breaker.
	ErrTransient = crerr.New("transient upstream failure")
	// ErrUnavailable is returned while the circuit breaker rejects calls.
	ErrUnavailable = crerr.New("upstream temporarily unavailable")
)

// StatusError is a non-2xx upstream response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status=%d body=%s", e.Code, e.Body)
}

// Param is one query parameter. Order is preserved in the request URL.
type Param struct {
	Key   string
	Value string
}

type Config struct {
	Name           string
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	UserAgent      string
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client performs JSON GET requests against one remote lookup service.
type Client struct {
	name         string
	baseURL      string
	timeout      time.Duration
	maxRetries   int
	retryBackoff time.Duration
	userAgent    string
	http         *fasthttp.Client
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       resilience.SingleFlight
}

func New(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "upstream"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = "match-analyst"
	}

	logger = logger.With("dependency", name)
	breaker := resilience.NewNamedCircuitBreaker(name, cfg.CircuitBreaker, func(dep string, from, to resilience.CircuitState) {
		logger.Warn("circuit breaker state changed", "from", string(from), "to", string(to))
	})

	return &Client{
		name:         name,
		baseURL:      strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		timeout:      timeout,
		maxRetries:   max(cfg.MaxRetries, 0),
		retryBackoff: backoff,
		userAgent:    userAgent,
		http: &fasthttp.Client{
			Name:                userAgent,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBodySize,
		},
		logger:  logger,
		breaker: breaker,
	}
}

func (c *Client) Name() string {
	return c.name
}

// BuildURL joins the base URL, path segments and query params. Segments are
// path-escaped; params are query-escaped in the given order.
func (c *Client) BuildURL(segments []string, params []Param) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(c.baseURL)
	for _, segment := range segments {
		segment = strings.Trim(strings.TrimSpace(segment), "/")
		if segment == "" {
			continue
		}
		_ = buf.WriteByte('/')
		_, _ = buf.WriteString(url.PathEscape(segment))
	}

	if len(params) > 0 {
		args := fasthttp.AcquireArgs()
		defer fasthttp.ReleaseArgs(args)
		for _, p := range params {
			args.Add(p.Key, p.Value)
		}
		_ = buf.WriteByte('?')
		_, _ = buf.Write(args.QueryString())
	}

	return buf.String()
}

// GetJSON fetches segments/params and decodes the JSON body into target.
// Concurrent identical requests share one upstream call.
func (c *Client) GetJSON(ctx context.Context, segments []string, params []Param, target any) error {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "circuit breaker rejected request", "state", string(c.breaker.State()))
		return crerr.Mark(crerr.Wrapf(err, "%s", c.name), ErrUnavailable)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	fullURL := c.BuildURL(segments, params)
	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		// The flight outlives any single caller; only the request budget bounds it.
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.requestBudget())
		defer cancel()

		raw, reqErr := c.executeRequest(flightCtx, fullURL)
		if reqErr != nil && crerr.Is(reqErr, ErrTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return crerr.Newf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s payload", c.name)
	}
	return nil
}

// requestBudget covers every attempt plus the linear backoff between them.
func (c *Client) requestBudget() time.Duration {
	attempts := time.Duration(c.maxRetries + 1)
	backoff := time.Duration(c.maxRetries*(c.maxRetries+1)/2) * c.retryBackoff
	return attempts*c.timeout + backoff
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := c.doOnce(ctx, fullURL)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if !crerr.Is(err, ErrTransient) {
			break
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * c.retryBackoff
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("upstream request failed")
	}
	c.logger.WarnContext(ctx, "upstream request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "send request"), ErrTransient)
	}

	body := append([]byte(nil), resp.Body()...)
	code := resp.StatusCode()
	if code >= fasthttp.StatusOK && code < fasthttp.StatusMultipleChoices {
		return body, nil
	}

	statusErr := &StatusError{Code: code, Body: abbreviateBody(body)}
	if isRetryableStatus(code) {
		return nil, crerr.Mark(statusErr, ErrTransient)
	}
	return nil, statusErr
}

func isRetryableStatus(code int) bool {
	return code == fasthttp.StatusRequestTimeout ||
		code == fasthttp.StatusTooManyRequests ||
		code >= fasthttp.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
