package plumbing

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) FixtureUnits(w http.ResponseWriter, r *http.Request) {
	var input FixtureUnitsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TotalFixtureUnits(input))
}

func (h *Handler) Supply(w http.ResponseWriter, r *http.Request) {
	var input SupplyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SupplyFlow(input))
}

func (h *Handler) Pipe(w http.ResponseWriter, r *http.Request) {
	var input PipeSizeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PipeSize(input))
}

func (h *Handler) Friction(w http.ResponseWriter, r *http.Request) {
	var input FrictionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FrictionLoss(input))
}

func (h *Handler) Drain(w http.ResponseWriter, r *http.Request) {
	var input DrainInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DrainPipeSize(input))
}

func (h *Handler) WaterHeater(w http.ResponseWriter, r *http.Request) {
	var input WaterHeaterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(WaterHeaterSize(input))
}
