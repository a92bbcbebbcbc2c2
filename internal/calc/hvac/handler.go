package hvac

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Heating(w http.ResponseWriter, r *http.Request) {
	var input HeatingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HeatingLoad(input))
}

func (h *Handler) Cooling(w http.ResponseWriter, r *http.Request) {
	var input CoolingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CoolingLoad(input))
}

func (h *Handler) Ventilation(w http.ResponseWriter, r *http.Request) {
	var input VentilationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(VentilationRate(input))
}

func (h *Handler) Capacity(w http.ResponseWriter, r *http.Request) {
	var input CapacityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(EquipmentCapacity(input))
}

func (h *Handler) Duct(w http.ResponseWriter, r *http.Request) {
	var input DuctInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DuctSize(input))
}
