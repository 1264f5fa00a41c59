package api

import (
	"net/http"

	"github.com/temporalio/temporal-restaurant/restaurant"
)

func (h *handlers) handleMenu(w http.ResponseWriter, r *http.Request) {
	var menu Menu
	for _, item := range restaurant.SampleMenu() {
		menu.Items = append(menu.Items, MenuItem{Type: item.Type, Name: item.Name, Price: item.Price})
	}

	writeJSON(w, http.StatusOK, menu)
}

func (h *handlers) handleMenuItemPrepare(w http.ResponseWriter, r *http.Request) {
	var input MenuItem
	if err := decode(r, &input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := restaurant.NewMenuItem(input.Type, input.Name, input.Price)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := item.Prepare(h.restaurant.Output()); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Line{Line: item.Preparing()})
}
