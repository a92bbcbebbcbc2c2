package fire

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Sprinkler(w http.ResponseWriter, r *http.Request) {
	var input SprinklerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Sprinkler(input))
}

func (h *Handler) Standpipe(w http.ResponseWriter, r *http.Request) {
	var input StandpipeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Standpipe(input))
}

func (h *Handler) Pump(w http.ResponseWriter, r *http.Request) {
	var input PumpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FirePump(input))
}

func (h *Handler) Hydrant(w http.ResponseWriter, r *http.Request) {
	var input HydrantInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HydrantFlow(input))
}

func (h *Handler) Spacing(w http.ResponseWriter, r *http.Request) {
	var input SpacingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HeadSpacing(input))
}
