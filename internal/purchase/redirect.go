package purchase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"rtalks.io/rtalks-web/internal/backend"
)

// Action is the payment redirector's verdict for one order.
type Action int

const (
	// ActionRedirect sends the whole page to the hosted payment link.
	ActionRedirect Action = iota + 1
	// ActionSimulate shows the test-mode simulated payment confirmation.
	ActionSimulate
	// ActionFail is a hard payment-configuration error.
	ActionFail
)

// SimulateDelay is how long the simulated payment waits before confirming.
const SimulateDelay = time.Second

// Decision captures what the redirector chose and the copy that goes with it.
type Decision struct {
	Action   Action
	Location string // hosted payment URL for ActionRedirect
	OrderID  string
	Message  string
}

// Decide applies the redirect precedence to an order result:
// hosted link first (terminal), then declared test mode, then a payment
// configuration lookup as the last resort. Only the last step touches the
// network.
func (fl *Flow) Decide(ctx context.Context, order backend.OrderResult) Decision {
	if order.UseHostedPage && order.PaymentLink != "" {
		return Decision{
			Action:   ActionRedirect,
			Location: order.PaymentLink,
			OrderID:  order.OrderID,
		}
	}
	if order.TestMode {
		return Decision{
			Action:  ActionSimulate,
			OrderID: order.OrderID,
			Message: simulatedPaymentMessage(order.OrderID),
		}
	}

	cfg, err := fl.api.GetPaymentConfig(ctx)
	if err != nil {
		fl.logger.Error("payment config lookup failed", zap.Error(err))
		msg := "Unable to initiate payment. Please try again or contact support."
		if backend.Classify(err) == backend.KindTransport {
			msg = "Payment setup timeout. Please check your internet connection."
		}
		return Decision{Action: ActionFail, OrderID: order.OrderID, Message: msg}
	}
	if cfg.TestMode || cfg.UseHostedPage {
		return Decision{
			Action:  ActionSimulate,
			OrderID: order.OrderID,
			Message: simulatedPaymentMessage(order.OrderID),
		}
	}

	fl.logger.Error("payment configuration incomplete",
		zap.String("order_id", order.OrderID))
	return Decision{
		Action:  ActionFail,
		OrderID: order.OrderID,
		Message: "Unable to initiate payment. Please try again or contact support.",
	}
}

func simulatedPaymentMessage(orderID string) string {
	return fmt.Sprintf("Test Mode: Payment simulation successful! Order ID: %s", orderID)
}

// VerifyOutcome reports the provider-callback verification result as copy.
type VerifyOutcome struct {
	OK      bool
	Message string
}

// VerifyCallback posts the provider callback fields for confirmation and maps
// the result to user-facing copy. A declared backend outage gets its own
// message; every other failure is the generic contact-support string.
func (fl *Flow) VerifyCallback(ctx context.Context, req backend.VerifyRequest) VerifyOutcome {
	result, err := fl.api.VerifyPayment(ctx, req)
	if err != nil {
		fl.logger.Error("payment verification failed",
			zap.String("order_id", req.OrderID),
			zap.Error(err))
		if errors.Is(err, backend.ErrUnavailable) {
			return VerifyOutcome{Message: "Database connection is currently unavailable. Please try again later."}
		}
		return VerifyOutcome{Message: verifyFailureMessage(req.PaymentID)}
	}
	if !result.Verified {
		return VerifyOutcome{Message: verifyFailureMessage(req.PaymentID)}
	}
	return VerifyOutcome{
		OK:      true,
		Message: "Payment Successful! Your ticket has been booked successfully.",
	}
}

func verifyFailureMessage(paymentID string) string {
	return fmt.Sprintf("Payment verification failed. Please contact support with your payment ID: %s", paymentID)
}
