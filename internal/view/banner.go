package view

import "fmt"

// Banner is the floating payment-status notice shown when the page URL
// carries provider redirect parameters.
type Banner struct {
	Show    bool
	Variant string // "success", "failed", or "error"
	Message string
	OrderID string
}

// BuildBanner maps the payment/order query parameters onto a banner. Unknown
// statuses and missing order ids yield no banner.
func BuildBanner(status, orderID string) Banner {
	if status == "" || orderID == "" {
		return Banner{}
	}
	b := Banner{Variant: status, OrderID: orderID}
	switch status {
	case "success":
		b.Message = fmt.Sprintf("Payment Successful! Your ticket has been booked. Order ID: %s", orderID)
	case "failed":
		b.Message = fmt.Sprintf("Payment Failed. Please try again. Order ID: %s", orderID)
	case "error":
		b.Message = fmt.Sprintf("Payment Error. Please contact support. Order ID: %s", orderID)
	default:
		return Banner{}
	}
	b.Show = true
	return b
}
