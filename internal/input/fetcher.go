package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/dyluth/advent/internal/session"
	"github.com/dyluth/advent/pkg/puzzle"
)

const (
	DefaultBaseURL   = "https://adventofcode.com"
	DefaultUserAgent = "github.com/dyluth/advent"

	defaultRetryInterval = 250 * time.Millisecond
	sessionHint          = "the session cookie is probably not set or has expired (set AOC_SESSION)"
)

// Fetcher downloads one day's input.
type Fetcher interface {
	Fetch(ctx context.Context, day puzzle.Day) (string, error)
}

// FetcherConfig configures an HTTPFetcher. Zero values select defaults.
type FetcherConfig struct {
	BaseURL   string
	Year      int
	UserAgent string
	Timeout   time.Duration
	// Retries bounds how often a transient transport failure is retried.
	Retries       int
	RetryInterval time.Duration
	Transport     http.RoundTripper
}

// HTTPFetcher GETs {base}/{year}/day/{N}/input with the session cookie.
type HTTPFetcher struct {
	client        *http.Client
	base          *url.URL
	year          int
	userAgent     string
	retries       int
	retryInterval time.Duration
	credential    session.Credential
	logger        *zap.Logger
}

// NewHTTPFetcher builds a fetcher whose cookie jar holds the session cookie
// for the base URL only.
func NewHTTPFetcher(cfg FetcherConfig, credential session.Credential, logger *zap.Logger) (*HTTPFetcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.RetryInterval == 0 {
		cfg.RetryInterval = defaultRetryInterval
	}
	if cfg.Year <= 0 {
		return nil, fmt.Errorf("year must be positive, got %d", cfg.Year)
	}
	if cfg.Retries < 0 {
		return nil, fmt.Errorf("retries must be >= 0, got %d", cfg.Retries)
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", cfg.BaseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	if credential.Present() {
		jar.SetCookies(base, []*http.Cookie{{Name: "session", Value: credential.Token(), Path: "/"}})
	}

	return &HTTPFetcher{
		client: &http.Client{
			Jar:       jar,
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
		base:          base,
		year:          cfg.Year,
		userAgent:     cfg.UserAgent,
		retries:       cfg.Retries,
		retryInterval: cfg.RetryInterval,
		credential:    credential,
		logger:        logger,
	}, nil
}

// URL returns the input address for day.
func (f *HTTPFetcher) URL(day puzzle.Day) string {
	return f.base.JoinPath(strconv.Itoa(f.year), "day", strconv.Itoa(int(day)), "input").String()
}

func (f *HTTPFetcher) Fetch(ctx context.Context, day puzzle.Day) (string, error) {
	const op = "fetch input"
	if !f.credential.Present() {
		return "", &AuthError{Day: day, Op: op, Hint: "no session configured and input is not cached (set AOC_SESSION)"}
	}

	target := f.URL(day)
	f.logger.Debug("Fetching input", zap.Int("day", int(day)), zap.String("url", target))

	var resp *http.Response
	attempt := func() error {
		// A fresh request per attempt: the client adds jar cookies to the request it sends.
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "text/plain")
		req.Header.Set("User-Agent", f.userAgent)

		r, err := f.client.Do(req)
		if err != nil {
			if retryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		resp = r
		return nil
	}
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = f.retryInterval
	notify := func(err error, wait time.Duration) {
		f.logger.Warn("Transient fetch failure, retrying",
			zap.Int("day", int(day)), zap.Duration("wait", wait), zap.Error(err))
	}
	err := backoff.RetryNotify(attempt, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(f.retries)), ctx), notify)
	if err != nil {
		return "", &NetworkError{Day: day, Op: op, Err: err, timeout: isTimeout(err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return "", &AuthError{Day: day, Op: op, Status: resp.StatusCode, Hint: sessionHint}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &AuthError{Day: day, Op: op, Status: resp.StatusCode, Hint: "the session was rejected"}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", &NetworkError{Day: day, Op: op, Status: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Day: day, Op: op, Err: fmt.Errorf("failed to read response body: %w", err), timeout: isTimeout(err)}
	}
	if len(body) == 0 {
		return "", &NetworkError{Day: day, Op: op, Err: errors.New("empty response body")}
	}

	f.logger.Debug("Fetched input", zap.Int("day", int(day)), zap.Int("bytes", len(body)))
	return string(body), nil
}

// retryable reports transport failures worth another attempt: refused or
// reset connections and temporary DNS failures. Timeouts and cancellation
// are final.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || isTimeout(err) {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && dnsErr.IsTemporary
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
