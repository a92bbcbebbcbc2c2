package plumbing

import (
	"math"

	sizing "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/sizing"
)

// Simplified UPC/IPC water supply and drainage sizing. Units: WSFU/DFU,
// GPM, inches, feet, PSI.

// Water supply fixture units per fixture type. Unknown types count as 1.
var supplyFixtureUnits = map[string]float64{
	"water_closet":      2.2,
	"urinal":            2.0,
	"lavatory":          0.7,
	"bathtub":           1.4,
	"shower":            1.4,
	"kitchen_sink":      1.4,
	"dishwasher":        1.4,
	"washing_machine":   1.4,
	"drinking_fountain": 0.25,
	"hose_bibb":         2.5,
}

// Drainage fixture units per fixture type. Unknown types count as 1.
var drainageFixtureUnits = map[string]float64{
	"water_closet":      3,
	"urinal":            2,
	"lavatory":          1,
	"bathtub":           2,
	"shower":            2,
	"kitchen_sink":      2,
	"dishwasher":        2,
	"washing_machine":   3,
	"drinking_fountain": 0.5,
	"floor_drain":       2,
}

// Standard copper tube sizes (inches).
var pipeSizes = []float64{0.5, 0.75, 1, 1.25, 1.5, 2, 2.5, 3, 4, 5, 6, 8, 10, 12}

// DFU capacity of horizontal drains at 1/4 in/ft slope.
var drainCapacities = []sizing.Entry{
	{Capacity: 3, Size: 1.5},
	{Capacity: 6, Size: 2},
	{Capacity: 12, Size: 2.5},
	{Capacity: 20, Size: 3},
	{Capacity: 160, Size: 4},
	{Capacity: 360, Size: 5},
	{Capacity: 620, Size: 6},
	{Capacity: 1400, Size: 8},
	{Capacity: 2500, Size: 10},
	{Capacity: 3900, Size: 12},
}

const (
	hazenWilliamsC = 140.0 // drawn copper
	targetVelocity = 5.0   // fps
	gpmToCFS       = 0.002228
	psiPerFtHead   = 0.433
)

type FixtureUnitsInput struct {
	FixtureCounts map[string]float64 `json:"fixture_counts"`
}

type FixtureUnitsResult struct {
	SupplyWSFU  float64 `json:"supply_wsfu"`
	DrainageDFU float64 `json:"drainage_dfu"`
}

// TotalFixtureUnits aggregates supply and drainage fixture units over the
// fixture schedule.
func TotalFixtureUnits(in FixtureUnitsInput) FixtureUnitsResult {
	var wsfu, dfu float64
	for fixture, count := range in.FixtureCounts {
		w, ok := supplyFixtureUnits[fixture]
		if !ok {
			w = 1
		}
		d, ok := drainageFixtureUnits[fixture]
		if !ok {
			d = 1
		}
		wsfu += count * w
		dfu += count * d
	}
	return FixtureUnitsResult{
		SupplyWSFU:  math.Round(wsfu*100) / 100,
		DrainageDFU: math.Round(dfu*100) / 100,
	}
}

// FixtureUnitsToGPM converts supply fixture units to a probable peak flow
// with a piecewise Hunter's-curve fit. The breakpoints and exponents are
// part of the contract.
func FixtureUnitsToGPM(wsfu float64) float64 {
	switch {
	case wsfu <= 0:
		return 0
	case wsfu <= 10:
		return math.Sqrt(wsfu) * 3.5
	case wsfu <= 50:
		return math.Pow(wsfu, 0.45) * 8
	case wsfu <= 200:
		return math.Pow(wsfu, 0.38) * 15
	default:
		return math.Pow(wsfu, 0.35) * 20
	}
}

type SupplyInput struct {
	FixtureUnits float64 `json:"fixture_units"`
}

type SupplyResult struct {
	FlowGPM float64 `json:"flow_gpm"`
}

// SupplyFlow is the HTTP-facing wrapper over FixtureUnitsToGPM.
func SupplyFlow(in SupplyInput) SupplyResult {
	return SupplyResult{FlowGPM: math.Round(FixtureUnitsToGPM(in.FixtureUnits)*10) / 10}
}

type PipeSizeInput struct {
	FixtureUnits         float64 `json:"fixture_units"`
	LengthFt             float64 `json:"length_ft"`
	PressureAvailablePSI float64 `json:"pressure_available_psi"`
}

type PipeSizeResult struct {
	DiameterIn      float64 `json:"diameter_in"`
	FlowGPM         float64 `json:"flow_gpm"`
	PressureLossPSI float64 `json:"pressure_loss_psi"`
}

// PipeSize selects a standard copper size for the supply run: diameter from
// the peak flow at a 5 fps target velocity, bumped one size when the
// friction loss over the run would eat more than half the available
// pressure.
func PipeSize(in PipeSizeInput) PipeSizeResult {
	flow := FixtureUnitsToGPM(in.FixtureUnits)
	areaFt2 := flow * gpmToCFS / targetVelocity
	diameterIn := 2 * math.Sqrt(areaFt2/math.Pi) * 12

	selected := sizing.NextAtLeast(pipeSizes, diameterIn)
	loss := frictionPSI(flow, selected, in.LengthFt)
	if loss > 0.5*in.PressureAvailablePSI {
		selected = sizing.NextAtLeast(pipeSizes, selected+0.01)
		loss = frictionPSI(flow, selected, in.LengthFt)
	}
	return PipeSizeResult{
		DiameterIn:      selected,
		FlowGPM:         math.Round(flow*10) / 10,
		PressureLossPSI: math.Round(loss*100) / 100,
	}
}

// frictionPSI is the Hazen-Williams loss over a run, in PSI.
func frictionPSI(flowGPM, diameterIn, lengthFt float64) float64 {
	if flowGPM <= 0 || diameterIn <= 0 {
		return 0
	}
	headLossFt := 4.52 * math.Pow(flowGPM, 1.85) /
		(math.Pow(hazenWilliamsC, 1.85) * math.Pow(diameterIn, 4.87)) * lengthFt
	return headLossFt * psiPerFtHead
}

type FrictionInput struct {
	FlowGPM    float64 `json:"flow_gpm"`
	DiameterIn float64 `json:"diameter_in"`
	LengthFt   float64 `json:"length_ft"`
}

type FrictionResult struct {
	LossPSIPer100Ft float64 `json:"loss_psi_per_100ft"`
	LossPSI         float64 `json:"loss_psi"`
}

// FrictionLoss reports Hazen-Williams friction loss (C=140) per 100 ft and
// over the whole run.
func FrictionLoss(in FrictionInput) FrictionResult {
	return FrictionResult{
		LossPSIPer100Ft: math.Round(frictionPSI(in.FlowGPM, in.DiameterIn, 100)*100) / 100,
		LossPSI:         math.Round(frictionPSI(in.FlowGPM, in.DiameterIn, in.LengthFt)*100) / 100,
	}
}

type DrainInput struct {
	DFU   float64 `json:"dfu"`
	Slope float64 `json:"slope_in_per_ft"`
}

type DrainResult struct {
	DiameterIn  float64 `json:"diameter_in"`
	AdjustedDFU float64 `json:"adjusted_dfu"`
}

// DrainPipeSize picks the horizontal drain size for the DFU load. Steeper
// slopes carry more, so demand is scaled by √(slope/0.25) before the table
// lookup. Default slope is 1/4 in/ft.
func DrainPipeSize(in DrainInput) DrainResult {
	slope := in.Slope
	if slope <= 0 {
		slope = 0.25
	}
	adjusted := in.DFU / math.Sqrt(slope/0.25)
	return DrainResult{
		DiameterIn:  sizing.SelectEntry(drainCapacities, adjusted).Size,
		AdjustedDFU: math.Round(adjusted*100) / 100,
	}
}

type WaterHeaterInput struct {
	FixtureCount     float64 `json:"fixture_count"`
	PeakDemandFactor float64 `json:"peak_demand_factor"`
}

type WaterHeaterResult struct {
	TankGal     float64 `json:"tank_gal"`
	RecoveryGPH float64 `json:"recovery_gph"`
}

// WaterHeaterSize estimates storage and recovery from the fixture count.
// Default peak demand factor is 0.4.
func WaterHeaterSize(in WaterHeaterInput) WaterHeaterResult {
	peak := in.PeakDemandFactor
	if peak <= 0 {
		peak = 0.4
	}
	base := in.FixtureCount * 12
	return WaterHeaterResult{
		TankGal:     math.Ceil(base*peak/10) * 10,
		RecoveryGPH: math.Ceil(base * peak * 0.7),
	}
}
