package electrical

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Demand(w http.ResponseWriter, r *http.Request) {
	var input DemandInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DemandLoad(input))
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	var input CurrentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Current(input))
}

func (h *Handler) Breaker(w http.ResponseWriter, r *http.Request) {
	var input BreakerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BreakerSize(input))
}

func (h *Handler) Wire(w http.ResponseWriter, r *http.Request) {
	var input WireInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(WireSize(input))
}

func (h *Handler) VoltageDrop(w http.ResponseWriter, r *http.Request) {
	var input VoltageDropInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(VoltageDrop(input))
}

func (h *Handler) ShortCircuit(w http.ResponseWriter, r *http.Request) {
	var input ShortCircuitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ShortCircuitCurrent(input))
}
