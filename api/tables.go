package api

import (
	"net/http"

	"github.com/temporalio/temporal-restaurant/restaurant"
)

func (h *handlers) handleTables(w http.ResponseWriter, r *http.Request) {
	var tables Tables
	for _, t := range restaurant.SampleTables() {
		tables.Tables = append(tables.Tables, Table{Type: t.Type, Number: t.Number})
	}

	writeJSON(w, http.StatusOK, tables)
}

func (h *handlers) handleTableReserve(w http.ResponseWriter, r *http.Request) {
	var input Table
	if err := decode(r, &input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	table, err := restaurant.NewTable(input.Type, input.Number)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := table.Reserve(h.restaurant.Output()); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, Line{Line: table.Reserving()})
}
