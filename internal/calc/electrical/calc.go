package electrical

import (
	"math"

	sizing "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/sizing"
)

// Simplified NEC-style feeder sizing. Units: watts, volts, amps, feet.

// wireEntry carries the NEC 75°C copper ampacity and DC resistance per
// 1000 ft for one conductor size, smallest gauge first.
type wireEntry struct {
	Gauge               string
	Ampacity            float64
	ResistancePer1000Ft float64
}

var wireTable = []wireEntry{
	{"14 AWG", 20, 3.07},
	{"12 AWG", 25, 1.93},
	{"10 AWG", 35, 1.21},
	{"8 AWG", 50, 0.764},
	{"6 AWG", 65, 0.491},
	{"4 AWG", 85, 0.308},
	{"3 AWG", 100, 0.245},
	{"2 AWG", 115, 0.194},
	{"1 AWG", 130, 0.154},
	{"1/0 AWG", 150, 0.122},
	{"2/0 AWG", 175, 0.0967},
	{"3/0 AWG", 200, 0.0766},
	{"4/0 AWG", 230, 0.0608},
	{"250 kcmil", 255, 0.0515},
	{"300 kcmil", 285, 0.0429},
	{"350 kcmil", 310, 0.0367},
	{"400 kcmil", 335, 0.0321},
	{"500 kcmil", 380, 0.0258},
}

// Standard molded-case breaker frames (amps).
var breakerSizes = []float64{
	15, 20, 25, 30, 35, 40, 45, 50, 60, 70, 80, 90, 100, 110, 125, 150,
	175, 200, 225, 250, 300, 350, 400, 450, 500, 600, 700, 800, 1000, 1200,
}

// Ampacity correction against the 75°C column.
var tempCorrection = map[int]float64{
	60: 0.88,
	75: 1.0,
	90: 1.04,
}

const (
	aluminumFactor      = 0.62 // aluminum ampacity relative to copper
	continuousLoadLimit = 0.8  // breakers loaded to 80% for continuous loads
	fallbackResistance  = 0.1  // Ω/1000ft for unknown gauges
)

type DemandInput struct {
	ConnectedLoadW float64 `json:"connected_load_w"`
	DemandFactor   float64 `json:"demand_factor"`
}

type DemandResult struct {
	DemandLoadW float64 `json:"demand_load_w"`
}

// DemandLoad derates the connected load by the demand factor to estimate
// realistic simultaneous demand.
func DemandLoad(in DemandInput) DemandResult {
	return DemandResult{DemandLoadW: math.Round(in.ConnectedLoadW * in.DemandFactor)}
}

type CurrentInput struct {
	LoadW       float64 `json:"load_w"`
	Voltage     float64 `json:"voltage"`
	Phases      int     `json:"phases"`
	PowerFactor float64 `json:"power_factor"`
}

type CurrentResult struct {
	CurrentA float64 `json:"current_a"`
}

// Current computes the line current for single- or three-phase loads.
func Current(in CurrentInput) CurrentResult {
	pf := in.PowerFactor
	if pf <= 0 {
		pf = 1.0
	}
	var amps float64
	if in.Phases == 3 {
		amps = in.LoadW / (math.Sqrt(3) * in.Voltage * pf)
	} else {
		amps = in.LoadW / (in.Voltage * pf)
	}
	return CurrentResult{CurrentA: math.Round(amps*10) / 10}
}

type BreakerInput struct {
	CurrentA   float64 `json:"current_a"`
	Continuous bool    `json:"continuous"`
}

type BreakerResult struct {
	BreakerA float64 `json:"breaker_a"`
}

// BreakerSize picks the next standard breaker frame at or above the
// required rating. Continuous loads are sized at 125%.
func BreakerSize(in BreakerInput) BreakerResult {
	required := in.CurrentA
	if in.Continuous {
		required = in.CurrentA / continuousLoadLimit
	}
	return BreakerResult{BreakerA: sizing.NextAtLeast(breakerSizes, required)}
}

type WireInput struct {
	CurrentA    float64 `json:"current_a"`
	Material    string  `json:"material"` // copper or aluminum
	TempRatingC int     `json:"temp_rating_c"`
}

type WireResult struct {
	Gauge     string  `json:"gauge"`
	AmpacityA float64 `json:"ampacity_a"` // corrected ampacity of the selected size
}

// WireSize selects the smallest conductor whose corrected ampacity covers
// the load at 80% loading. Falls back to the largest tabulated size when
// nothing qualifies.
func WireSize(in WireInput) WireResult {
	required := in.CurrentA / continuousLoadLimit

	factor, ok := tempCorrection[in.TempRatingC]
	if !ok {
		factor = 1.0
	}
	if in.Material == "aluminum" {
		factor *= aluminumFactor
	}

	for _, e := range wireTable {
		corrected := e.Ampacity * factor
		if corrected >= required {
			return WireResult{Gauge: e.Gauge, AmpacityA: math.Round(corrected*10) / 10}
		}
	}
	last := wireTable[len(wireTable)-1]
	return WireResult{Gauge: last.Gauge, AmpacityA: math.Round(last.Ampacity*factor*10) / 10}
}

type VoltageDropInput struct {
	CurrentA   float64 `json:"current_a"`
	DistanceFt float64 `json:"distance_ft"`
	Voltage    float64 `json:"voltage"`
	WireGauge  string  `json:"wire_gauge"`
	Phases     int     `json:"phases"`
}

type VoltageDropResult struct {
	DropV       float64 `json:"drop_v"`
	DropPercent float64 `json:"drop_percent"`
}

// VoltageDrop estimates the feeder voltage drop as a percentage of nominal
// voltage. Single-phase runs carry the round-trip factor of 2; unknown
// gauges assume 0.1 Ω/1000ft.
func VoltageDrop(in VoltageDropInput) VoltageDropResult {
	resistance := fallbackResistance
	for _, e := range wireTable {
		if e.Gauge == in.WireGauge {
			resistance = e.ResistancePer1000Ft
			break
		}
	}

	var drop float64
	if in.Phases == 3 {
		drop = math.Sqrt(3) * in.CurrentA * resistance * in.DistanceFt / 1000.0
	} else {
		drop = 2 * in.CurrentA * resistance * in.DistanceFt / 1000.0
	}
	percent := drop / in.Voltage * 100.0
	return VoltageDropResult{
		DropV:       math.Round(drop*100) / 100,
		DropPercent: math.Round(percent*100) / 100,
	}
}

type ShortCircuitInput struct {
	TransformerKVA float64 `json:"transformer_kva"`
	Voltage        float64 `json:"voltage"`
	ImpedancePct   float64 `json:"impedance_pct"`
}

type ShortCircuitResult struct {
	FaultCurrentA float64 `json:"fault_current_a"`
}

// ShortCircuitCurrent gives the available fault current at the transformer
// secondary from its kVA rating and nameplate impedance.
func ShortCircuitCurrent(in ShortCircuitInput) ShortCircuitResult {
	amps := (in.TransformerKVA * 1000.0) / (math.Sqrt(3) * in.Voltage * (in.ImpedancePct / 100.0))
	return ShortCircuitResult{FaultCurrentA: math.Round(amps)}
}
