package purchase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"rtalks.io/rtalks-web/internal/backend"
)

// Local validation failures. These block submission before any network call.
var (
	ErrNoSelection   = errors.New("purchase: no package selected")
	ErrMissingFields = errors.New("purchase: missing required fields")
	ErrInvalidPrice  = errors.New("purchase: package price unavailable")
)

// MessageTTL is how long inline purchase messages stay visible.
const MessageTTL = 5 * time.Second

// Form carries one purchase submission. PackageType is the explicit selection
// for this request; there is no process-wide selected package.
type Form struct {
	Name        string
	Email       string
	Phone       string
	PackageType string
}

// Validate checks the form against the price table. It performs no I/O.
func (f Form) Validate(prices map[string]int64) error {
	if strings.TrimSpace(f.PackageType) == "" {
		return ErrNoSelection
	}
	if strings.TrimSpace(f.Name) == "" ||
		strings.TrimSpace(f.Email) == "" ||
		strings.TrimSpace(f.Phone) == "" {
		return ErrMissingFields
	}
	if prices[f.PackageType] <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// Flow drives order creation and the payment hand-off.
type Flow struct {
	api    *backend.Client
	logger *zap.Logger
}

// NewFlow builds a purchase flow around the backend client.
func NewFlow(api *backend.Client, logger *zap.Logger) *Flow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Flow{api: api, logger: logger}
}

// Submit validates the form and creates the order. displayName is the
// customer-facing package name sent to the backend. The returned error is
// suitable for UserMessage; the raw cause is logged here, never surfaced.
func (fl *Flow) Submit(ctx context.Context, form Form, prices map[string]int64, displayName string) (backend.OrderResult, error) {
	if err := form.Validate(prices); err != nil {
		return backend.OrderResult{}, err
	}
	order := backend.OrderRequest{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Phone:   strings.TrimSpace(form.Phone),
		Package: displayName,
		Price:   prices[form.PackageType],
	}
	result, err := fl.api.CreateOrder(ctx, order)
	if err != nil {
		fl.logger.Error("order creation failed",
			zap.String("package", form.PackageType),
			zap.Error(err))
		return backend.OrderResult{}, err
	}
	fl.logger.Info("order created",
		zap.String("order_id", result.OrderID),
		zap.String("package", form.PackageType),
		zap.Bool("test_mode", result.TestMode))
	return result, nil
}

// UserMessage maps a submission error onto the small set of customer-facing
// strings. Technical detail never leaks through here.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoSelection):
		return "Please select a ticket package first."
	case errors.Is(err, ErrMissingFields):
		return "Please fill in all required fields."
	case errors.Is(err, ErrInvalidPrice):
		return "Invalid package selected. Please try again."
	case errors.Is(err, backend.ErrUnavailable):
		return "Service temporarily unavailable. Please try again in a moment."
	}
	var be *backend.Error
	if errors.As(err, &be) && be.Status == 400 {
		return "Please fill in all required fields."
	}
	return "Unable to process your request. Please check your information and try again."
}
