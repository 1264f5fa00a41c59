package api

import (
	"net/http"

	"github.com/temporalio/temporal-restaurant/restaurant"
)

func (h *handlers) handleOrder(w http.ResponseWriter, r *http.Request) {
	var input Order
	if err := decode(r, &input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.restaurant.Orders().ProcessOrder(input.Details); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Line{Line: restaurant.OrderProcessed(input.Details)})
}

func (h *handlers) handlePayment(w http.ResponseWriter, r *http.Request) {
	var input Payment
	if err := decode(r, &input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.restaurant.Payments().ProcessPayment(input.Amount); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Line{Line: restaurant.PaymentProcessed(input.Amount)})
}
