package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HTTP timeouts mandated for backend interactions: general API calls get the
// default; the payment-configuration lookup is capped tighter.
const (
	defaultTimeout       = 10 * time.Second
	paymentConfigTimeout = 5 * time.Second
	idempotencyHeader    = "Idempotency-Key"
)

// Client issues JSON calls against the ticketing backend API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient constructs an API client. When baseURL is empty, the client serves
// fake test-mode data so the site stays usable without a backend.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// SetHTTPClient swaps the underlying HTTP client (primarily for tests).
func (c *Client) SetHTTPClient(h *http.Client) {
	if h != nil {
		c.http = h
	}
}

// GetEvent fetches the headline event details.
func (c *Client) GetEvent(ctx context.Context) (EventInfo, error) {
	if c.fakeMode() {
		return fakeEvent(), nil
	}
	var payload eventPayload
	if err := c.getJSON(ctx, "event", &payload); err != nil {
		return EventInfo{}, err
	}
	return payload.toEventInfo(), nil
}

// GetStats fetches the aggregate hero counters.
func (c *Client) GetStats(ctx context.Context) (Stats, error) {
	if c.fakeMode() {
		return fakeStats(), nil
	}
	var stats Stats
	if err := c.getJSON(ctx, "stats", &stats); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// GetPackages fetches the purchasable tiers.
func (c *Client) GetPackages(ctx context.Context) ([]Package, error) {
	if c.fakeMode() {
		return fakePackages(), nil
	}
	var packages []Package
	if err := c.getJSON(ctx, "packages", &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// GetContentSections fetches the keyed homepage copy blocks.
func (c *Client) GetContentSections(ctx context.Context) ([]ContentSection, error) {
	if c.fakeMode() {
		return fakeContentSections(), nil
	}
	var sections []ContentSection
	if err := c.getJSON(ctx, "content", &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// GetSpeakers fetches the carousel entries.
func (c *Client) GetSpeakers(ctx context.Context) ([]Speaker, error) {
	if c.fakeMode() {
		return fakeSpeakers(), nil
	}
	var speakers []Speaker
	if err := c.getJSON(ctx, "speakers", &speakers); err != nil {
		return nil, err
	}
	return speakers, nil
}

// GetContactInfo fetches the contact cards' data.
func (c *Client) GetContactInfo(ctx context.Context) (ContactInfo, error) {
	if c.fakeMode() {
		return fakeContactInfo(), nil
	}
	var info ContactInfo
	if err := c.getJSON(ctx, "contact-info", &info); err != nil {
		return ContactInfo{}, err
	}
	return info, nil
}

// CreateOrder submits a purchase and returns the order descriptor the payment
// redirector consumes. Each submission carries a fresh idempotency key.
func (c *Client) CreateOrder(ctx context.Context, order OrderRequest) (OrderResult, error) {
	if c.fakeMode() {
		return fakeOrderResult(), nil
	}
	const op = "create order"
	endpoint, err := url.JoinPath(c.baseURL, "orders")
	if err != nil {
		return OrderResult{}, transportError(op, err)
	}
	payload, err := json.Marshal(order)
	if err != nil {
		return OrderResult{}, transportError(op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return OrderResult{}, transportError(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(idempotencyHeader, uuid.NewString())

	var result OrderResult
	if err := c.do(req, op, &result); err != nil {
		return OrderResult{}, err
	}
	return result, nil
}

// GetPaymentConfig fetches payment configuration with the tighter timeout.
func (c *Client) GetPaymentConfig(ctx context.Context) (PaymentConfig, error) {
	if c.fakeMode() {
		return PaymentConfig{TestMode: true}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, paymentConfigTimeout)
	defer cancel()
	var cfg PaymentConfig
	if err := c.getJSON(ctx, "config", &cfg); err != nil {
		return PaymentConfig{}, err
	}
	return cfg, nil
}

// VerifyPayment posts provider callback fields for backend confirmation.
func (c *Client) VerifyPayment(ctx context.Context, verify VerifyRequest) (VerifyResult, error) {
	if c.fakeMode() {
		return VerifyResult{Verified: true, Message: "test mode"}, nil
	}
	const op = "verify payment"
	endpoint, err := url.JoinPath(c.baseURL, "verify-payment")
	if err != nil {
		return VerifyResult{}, transportError(op, err)
	}
	payload, err := json.Marshal(verify)
	if err != nil {
		return VerifyResult{}, transportError(op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return VerifyResult{}, transportError(op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var result VerifyResult
	if err := c.do(req, op, &result); err != nil {
		return VerifyResult{}, err
	}
	return result, nil
}

func (c *Client) fakeMode() bool {
	return c == nil || c.baseURL == ""
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	op := "get " + endpoint
	full, err := url.JoinPath(c.baseURL, endpoint)
	if err != nil {
		return transportError(op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return transportError(op, err)
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, op, out)
}

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend call failed",
			zap.String("op", op),
			zap.Error(err))
		return transportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail := readErrorBody(resp.Body)
		c.logger.Warn("backend returned error status",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.String("code", detail.Code))
		return statusError(op, resp.StatusCode, detail.Code)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("backend payload malformed",
			zap.String("op", op),
			zap.Error(err))
		return decodeError(op, err)
	}
	return nil
}

// errorBody mirrors the backend's error envelope. The code field is what
// distinguishes a declared outage from a plain failure.
type errorBody struct {
	Message string `json:"message"`
	Err     string `json:"error"`
	Code    string `json:"code"`
}

func readErrorBody(r io.Reader) errorBody {
	var body errorBody
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return body
	}
	_ = json.Unmarshal(data, &body)
	return body
}
