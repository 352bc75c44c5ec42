package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"rtalks.io/rtalks-web/internal/purchase"
	"rtalks.io/rtalks-web/internal/view"
)

// OutcomeData is the view model for the purchase outcome page: simulated
// payments, verification results, and submission errors.
type OutcomeData struct {
	Title   string
	Variant string // "success" or "error"
	Message string
	OrderID string
}

// OrdersHandler handles the purchase form submission. Field-level validation
// happens before any backend call; only a fully filled form reaches the
// network. A valid order is handed to the payment redirector, whose verdict
// decides between a hosted-page redirect, a simulated confirmation, and a
// configuration error.
func OrdersHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := purchase.Form{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		PackageType: r.FormValue("package"),
	}

	// Cheap checks against the seeded price table never touch the network.
	// An unknown tier falls through so the fetched table can vouch for it.
	if err := form.Validate(view.PriceTable(nil)); err != nil && !errors.Is(err, purchase.ErrInvalidPrice) {
		renderPurchaseError(w, r, purchase.UserMessage(err))
		return
	}

	api := apiClientFor(r)
	flow := purchase.NewFlow(api, appLogger)

	packages, err := api.GetPackages(r.Context())
	if err != nil {
		// Seeded defaults still back the built-in tiers.
		appLogger.Warn("package fetch failed, pricing from seeded defaults",
			zap.String("package", form.PackageType),
			zap.Error(err))
		packages = nil
	}
	prices := view.PriceTable(packages)
	displayName := view.DisplayName(packages, form.PackageType)

	order, err := flow.Submit(r.Context(), form, prices, displayName)
	if err != nil {
		renderPurchaseError(w, r, purchase.UserMessage(err))
		return
	}

	decision := flow.Decide(r.Context(), order)
	switch decision.Action {
	case purchase.ActionRedirect:
		http.Redirect(w, r, decision.Location, http.StatusSeeOther)
	case purchase.ActionSimulate:
		// The simulated confirmation lands on the home page banner after the
		// fixed delay, mirroring the hosted-page round trip.
		w.Header().Set("Refresh", fmt.Sprintf("%d; url=/?payment=success&order=%s",
			int(purchase.SimulateDelay.Seconds()), url.QueryEscape(decision.OrderID)))
		render(w, r, "outcome", OutcomeData{
			Title:   "Payment Simulation",
			Variant: "success",
			Message: decision.Message,
			OrderID: decision.OrderID,
		})
	default:
		renderPurchaseError(w, r, decision.Message)
	}
}

// renderPurchaseError shows the transient inline message and sends the
// visitor back to the form once it expires.
func renderPurchaseError(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Refresh", fmt.Sprintf("%d; url=/", int(purchase.MessageTTL.Seconds())))
	render(w, r, "outcome", OutcomeData{
		Title:   "Purchase",
		Variant: "error",
		Message: message,
	})
}
