package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	electrical "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/electrical"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

// FeederRow is one sized feeder from an imported panel schedule.
type FeederRow struct {
	Name        string  `json:"name"`
	DemandLoadW float64 `json:"demand_load_w"`
	CurrentA    float64 `json:"current_a"`
	BreakerA    float64 `json:"breaker_a"`
	Gauge       string  `json:"gauge"`
	DropPercent float64 `json:"drop_percent"`
}

type FeederImportResult struct {
	Count   int         `json:"count"`
	Results []FeederRow `json:"results"`
}

// Feeders sizes every feeder in an uploaded xlsx panel schedule.
// Expected columns: name, load_w, voltage, phases, power_factor,
// demand_factor, distance_ft.
func (h *Handler) Feeders(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []FeederRow
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 3 {
			continue
		}
		feeder, err := sizeFeederRow(row)
		if err != nil {
			continue
		}
		results = append(results, feeder)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FeederImportResult{Count: len(results), Results: results})
}

func sizeFeederRow(row []string) (FeederRow, error) {
	name := row[0]
	loadW, err := toFloat(row[1])
	if err != nil {
		return FeederRow{}, err
	}
	voltage, err := toFloat(row[2])
	if err != nil {
		return FeederRow{}, err
	}
	phases := 1
	if len(row) > 3 && row[3] != "" {
		p, _ := toFloat(row[3])
		phases = int(p)
	}
	pf := 0.9
	if len(row) > 4 && row[4] != "" {
		pf, _ = toFloat(row[4])
	}
	demandFactor := 1.0
	if len(row) > 5 && row[5] != "" {
		demandFactor, _ = toFloat(row[5])
	}
	distance := 0.0
	if len(row) > 6 && row[6] != "" {
		distance, _ = toFloat(row[6])
	}

	demand := electrical.DemandLoad(electrical.DemandInput{
		ConnectedLoadW: loadW,
		DemandFactor:   demandFactor,
	})
	current := electrical.Current(electrical.CurrentInput{
		LoadW:       demand.DemandLoadW,
		Voltage:     voltage,
		Phases:      phases,
		PowerFactor: pf,
	})
	breaker := electrical.BreakerSize(electrical.BreakerInput{CurrentA: current.CurrentA, Continuous: true})
	wire := electrical.WireSize(electrical.WireInput{
		CurrentA:    current.CurrentA,
		Material:    "copper",
		TempRatingC: 75,
	})
	drop := electrical.VoltageDrop(electrical.VoltageDropInput{
		CurrentA:   current.CurrentA,
		DistanceFt: distance,
		Voltage:    voltage,
		WireGauge:  wire.Gauge,
		Phases:     phases,
	})

	return FeederRow{
		Name:        name,
		DemandLoadW: demand.DemandLoadW,
		CurrentA:    current.CurrentA,
		BreakerA:    breaker.BreakerA,
		Gauge:       wire.Gauge,
		DropPercent: drop.DropPercent,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
