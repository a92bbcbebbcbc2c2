package fire

import "math"

// Simplified NFPA 13/14/20 sizing. Units: ft², ft, GPM, PSI.

type hazardData struct {
	Density      float64 // gpm/ft²
	CoverageFt2  float64 // ft² per head
	BasePressure float64 // psi at the head
}

// Occupancy hazard classes. Unknown classes are treated as Light.
var hazardClasses = map[string]hazardData{
	"Light":       {0.10, 200, 15},
	"Ordinary I":  {0.15, 130, 20},
	"Ordinary II": {0.20, 130, 25},
	"Extra":       {0.30, 90, 35},
}

// ISO-style construction factors. Unknown types use 1.0 (ordinary).
var constructionFactors = map[string]float64{
	"Type I":   0.6,
	"Type II":  0.8,
	"Type III": 1.0,
	"Type IV":  0.9,
	"Type V":   1.2,
}

const (
	psiPerFtElevation = 0.433
	minDesignAreaFt2  = 1500.0
	pumpEfficiency    = 0.70
)

type SprinklerInput struct {
	AreaFt2         float64 `json:"area_ft2"`
	HazardClass     string  `json:"hazard_class"`
	CeilingHeightFt float64 `json:"ceiling_height_ft"`
}

type SprinklerSystem struct {
	HazardClass string  `json:"hazard_class"`
	CoverageFt2 float64 `json:"coverage_ft2"`
	Density     float64 `json:"density_gpm_ft2"`
	HeadCount   float64 `json:"head_count"`
	FlowRateGPM float64 `json:"flow_rate_gpm"`
	PressurePSI float64 `json:"pressure_psi"`
	PipeSizeIn  float64 `json:"pipe_size_in"`
}

// Sprinkler sizes a wet-pipe sprinkler system: density and coverage from
// the hazard class, hydraulically remote design area of at least 1500 ft²,
// pressure from base demand plus elevation and a 30% friction allowance.
func Sprinkler(in SprinklerInput) SprinklerSystem {
	class := in.HazardClass
	hazard, ok := hazardClasses[class]
	if !ok {
		class = "Light"
		hazard = hazardClasses[class]
	}

	headCount := math.Ceil(in.AreaFt2 / hazard.CoverageFt2)
	designArea := math.Max(minDesignAreaFt2, hazard.CoverageFt2*5)
	flowRate := math.Round(designArea * hazard.Density)
	pressure := hazard.BasePressure + in.CeilingHeightFt*psiPerFtElevation + 0.3*hazard.BasePressure

	return SprinklerSystem{
		HazardClass: class,
		CoverageFt2: hazard.CoverageFt2,
		Density:     hazard.Density,
		HeadCount:   headCount,
		FlowRateGPM: flowRate,
		PressurePSI: math.Round(pressure*100) / 100,
		PipeSizeIn:  sprinklerMainSize(flowRate),
	}
}

// sprinklerMainSize maps the system flow to the supply main diameter.
func sprinklerMainSize(flowGPM float64) float64 {
	switch {
	case flowGPM < 100:
		return 2
	case flowGPM < 200:
		return 2.5
	case flowGPM < 400:
		return 3
	case flowGPM < 750:
		return 4
	case flowGPM < 1200:
		return 5
	case flowGPM < 2000:
		return 6
	default:
		return 8
	}
}

type StandpipeInput struct {
	Floors           int     `json:"floors"`
	BuildingHeightFt float64 `json:"building_height_ft"`
}

type StandpipeResult struct {
	SystemType      string  `json:"system_type"`
	FlowRateGPM     float64 `json:"flow_rate_gpm"`
	PressurePSI     float64 `json:"pressure_psi"`
	PipeSizeIn      float64 `json:"pipe_size_in"`
	HoseConnections int     `json:"hose_connections"`
}

// Standpipe sizes a Class I standpipe: 500 GPM for the first standpipe
// plus 250 GPM per additional floor above three, capped at 1250 GPM.
func Standpipe(in StandpipeInput) StandpipeResult {
	flow := 500.0
	if in.Floors > 3 {
		flow = math.Min(1250, 500+float64(in.Floors-3)*250)
	}
	pressure := 100 + in.BuildingHeightFt*psiPerFtElevation + in.BuildingHeightFt*0.1
	pipe := 4.0
	if in.Floors > 5 {
		pipe = 6.0
	}
	return StandpipeResult{
		SystemType:      "Class I",
		FlowRateGPM:     flow,
		PressurePSI:     math.Round(pressure*100) / 100,
		PipeSizeIn:      pipe,
		HoseConnections: in.Floors,
	}
}

type PumpInput struct {
	TotalFlowGPM        float64 `json:"total_flow_gpm"`
	StaticPressurePSI   float64 `json:"static_pressure_psi"`
	RequiredPressurePSI float64 `json:"required_pressure_psi"`
	ElevationFt         float64 `json:"elevation_ft"`
}

type PumpResult struct {
	PumpCapacityGPM float64 `json:"pump_capacity_gpm"`
	PumpPressurePSI float64 `json:"pump_pressure_psi"`
	Horsepower      float64 `json:"horsepower"`
	PumpType        string  `json:"pump_type"`
}

// FirePump sizes a fire pump at 150% of system demand with the pressure
// deficit rounded up to 5 psi and brake horsepower at 70% efficiency.
func FirePump(in PumpInput) PumpResult {
	capacity := math.Ceil(in.TotalFlowGPM*1.5/100) * 100
	deficit := in.RequiredPressurePSI - in.StaticPressurePSI +
		in.ElevationFt*psiPerFtElevation + in.ElevationFt*0.15
	if deficit < 0 {
		deficit = 0
	}
	pressure := math.Ceil(deficit/5) * 5
	hp := math.Ceil(capacity*pressure/(1714*pumpEfficiency)/5) * 5

	pumpType := "Horizontal Split Case"
	if pressure > 120 {
		pumpType = "Vertical Turbine"
	} else if capacity > 1500 {
		pumpType = "Horizontal Split Case Large"
	}

	return PumpResult{
		PumpCapacityGPM: capacity,
		PumpPressurePSI: pressure,
		Horsepower:      hp,
		PumpType:        pumpType,
	}
}

type HydrantInput struct {
	BuildingAreaFt2  float64 `json:"building_area_ft2"`
	ConstructionType string  `json:"construction_type"`
}

type HydrantResult struct {
	FlowGPM float64 `json:"flow_gpm"`
	Factor  float64 `json:"construction_factor"`
}

// HydrantFlow is an ISO-style needed fire flow: C·√area·18, clamped to
// [500, 12000] and rounded to the nearest 250 GPM.
func HydrantFlow(in HydrantInput) HydrantResult {
	factor, ok := constructionFactors[in.ConstructionType]
	if !ok {
		factor = 1.0
	}
	flow := factor * math.Sqrt(in.BuildingAreaFt2) * 18
	flow = math.Min(12000, math.Max(500, flow))
	return HydrantResult{
		FlowGPM: math.Round(flow/250) * 250,
		Factor:  factor,
	}
}

type SpacingInput struct {
	CoverageFt2 float64 `json:"coverage_ft2"`
}

type SpacingResult struct {
	MaxSpacingFt  float64 `json:"max_spacing_ft"`
	MaxDistanceFt float64 `json:"max_distance_ft"` // to walls
}

// HeadSpacing derives head spacing limits from the per-head coverage.
func HeadSpacing(in SpacingInput) SpacingResult {
	spacing := math.Sqrt(in.CoverageFt2)
	return SpacingResult{
		MaxSpacingFt:  math.Round(spacing*10) / 10,
		MaxDistanceFt: math.Round(spacing/2*10) / 10,
	}
}
