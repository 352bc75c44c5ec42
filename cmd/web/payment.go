package main

import (
	"net/http"
	"net/url"

	"rtalks.io/rtalks-web/internal/backend"
	"rtalks.io/rtalks-web/internal/purchase"
)

// PaymentCallbackHandler accepts the payment provider's redirect back to the
// site and asks the backend to verify the payment. Confirmed payments bounce
// to the home page with the success banner; anything else renders the
// verification failure copy directly.
func PaymentCallbackHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := backend.VerifyRequest{
		OrderID:   q.Get("order"),
		PaymentID: q.Get("payment_id"),
		Signature: q.Get("signature"),
	}
	if req.OrderID == "" || req.PaymentID == "" {
		http.Error(w, "missing payment callback parameters", http.StatusBadRequest)
		return
	}

	flow := purchase.NewFlow(apiClientFor(r), appLogger)
	outcome := flow.VerifyCallback(r.Context(), req)
	if outcome.OK {
		http.Redirect(w, r, "/?payment=success&order="+url.QueryEscape(req.OrderID), http.StatusSeeOther)
		return
	}
	render(w, r, "outcome", OutcomeData{
		Title:   "Payment Verification",
		Variant: "error",
		Message: outcome.Message,
		OrderID: req.OrderID,
	})
}
