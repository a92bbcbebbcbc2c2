package recommend

import (
	"fmt"

	electrical "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/electrical"
)

// Unit loads by building type (W/ft², lighting plus receptacles).
var unitLoads = map[string]float64{
	"office":     10,
	"school":     12,
	"retail":     8,
	"restaurant": 14,
	"warehouse":  5,
	"hospital":   16,
}

type ServiceInput struct {
	AreaFt2      float64 `json:"area_ft2"`
	BuildingType string  `json:"building_type"`
	Voltage      float64 `json:"voltage"`
	Phases       int     `json:"phases"`
	DemandFactor float64 `json:"demand_factor"`
}

type ServiceResult struct {
	ConnectedLoadW float64 `json:"connected_load_w"`
	DemandLoadW    float64 `json:"demand_load_w"`
	ServiceA       float64 `json:"service_a"`
	Gauge          string  `json:"gauge"`
	Notes          string  `json:"notes"`
}

// Service recommends an electrical service size from the building area and
// type, chaining the demand, current, breaker and wire calculators.
func Service(in ServiceInput) (ServiceResult, error) {
	if in.AreaFt2 <= 0 || in.Voltage <= 0 {
		return ServiceResult{}, fmt.Errorf("invalid input")
	}
	if in.DemandFactor <= 0 {
		in.DemandFactor = 0.8
	}
	unitLoad, ok := unitLoads[in.BuildingType]
	if !ok {
		unitLoad = 10
	}

	connected := in.AreaFt2 * unitLoad
	demand := electrical.DemandLoad(electrical.DemandInput{
		ConnectedLoadW: connected,
		DemandFactor:   in.DemandFactor,
	})
	current := electrical.Current(electrical.CurrentInput{
		LoadW:       demand.DemandLoadW,
		Voltage:     in.Voltage,
		Phases:      in.Phases,
		PowerFactor: 0.9,
	})
	breaker := electrical.BreakerSize(electrical.BreakerInput{
		CurrentA:   current.CurrentA,
		Continuous: true,
	})
	wire := electrical.WireSize(electrical.WireInput{
		CurrentA:    current.CurrentA,
		Material:    "copper",
		TempRatingC: 75,
	})

	return ServiceResult{
		ConnectedLoadW: connected,
		DemandLoadW:    demand.DemandLoadW,
		ServiceA:       breaker.BreakerA,
		Gauge:          wire.Gauge,
		Notes:          "Recommended service from unit load method.",
	}, nil
}
