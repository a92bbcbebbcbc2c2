package hvac

import (
	"math"

	sizing "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/sizing"
)

// Simplified ASHRAE-style load estimates. Units are fixed: ft², °F, BTU/hr,
// CFM, tons, inches. Callers convert before calling, the engine never does.

const (
	envelopeLossBTUFt2 = 30.0   // baseline at 70°F design ΔT
	infiltrationFactor = 0.018  // BTU/hr per ft² per °F
	occupantSensible   = 250.0  // BTU/hr per person
	occupantLatent     = 200.0  // BTU/hr per person
	solarGainBTUFt2    = 40.0   // baseline at 20°F design ΔT
	conductionBTUFt2   = 15.0
	lightingWFt2       = 1.5
	equipmentWFt2      = 1.0
	wattToBTU          = 3.412
)

type ventRate struct {
	PerPerson float64 // CFM/person
	PerArea   float64 // CFM/ft²
}

// Outdoor air rates by space type. Unknown types fall back to office.
var ventilationRates = map[string]ventRate{
	"office":     {5, 0.06},
	"classroom":  {10, 0.12},
	"retail":     {7.5, 0.12},
	"restaurant": {7.5, 0.18},
	"warehouse":  {10, 0.06},
	"gym":        {20, 0.06},
}

// Round metal duct diameters (inches).
var ductSizes = []float64{6, 8, 10, 12, 14, 16, 18, 20, 24, 30, 36, 42, 48}

type HeatingInput struct {
	AreaFt2     float64 `json:"area_ft2"`
	Occupancy   float64 `json:"occupancy"`
	OutdoorTemp float64 `json:"outdoor_temp_f"`
	IndoorTemp  float64 `json:"indoor_temp_f"`
}

type HeatingBreakdown struct {
	EnvelopeBTUH     float64 `json:"envelope_btu_hr"`
	InfiltrationBTUH float64 `json:"infiltration_btu_hr"`
	OccupantBTUH     float64 `json:"occupant_btu_hr"` // negative, heat given off by people
}

type HeatingResult struct {
	LoadBTUH  float64          `json:"load_btu_hr"`
	Breakdown HeatingBreakdown `json:"breakdown"`
}

// HeatingLoad estimates the design heating load. The load is floored at
// zero: occupant gains can offset losses but a space never needs negative
// heating.
func HeatingLoad(in HeatingInput) HeatingResult {
	deltaT := in.IndoorTemp - in.OutdoorTemp
	tempFactor := deltaT / 70.0

	envelope := envelopeLossBTUFt2 * in.AreaFt2 * tempFactor
	infiltration := infiltrationFactor * in.AreaFt2 * deltaT
	occupant := -occupantSensible * in.Occupancy

	total := envelope + infiltration + occupant
	if total < 0 {
		total = 0
	}
	return HeatingResult{
		LoadBTUH: math.Round(total),
		Breakdown: HeatingBreakdown{
			EnvelopeBTUH:     envelope,
			InfiltrationBTUH: infiltration,
			OccupantBTUH:     occupant,
		},
	}
}

type CoolingInput struct {
	AreaFt2     float64 `json:"area_ft2"`
	Occupancy   float64 `json:"occupancy"`
	OutdoorTemp float64 `json:"outdoor_temp_f"`
	IndoorTemp  float64 `json:"indoor_temp_f"`
}

type CoolingBreakdown struct {
	SolarBTUH        float64 `json:"solar_btu_hr"`
	ConductionBTUH   float64 `json:"conduction_btu_hr"`
	InfiltrationBTUH float64 `json:"infiltration_btu_hr"`
	InternalBTUH     float64 `json:"internal_btu_hr"`
	OccupantBTUH     float64 `json:"occupant_btu_hr"`
}

type CoolingResult struct {
	LoadBTUH  float64          `json:"load_btu_hr"`
	Breakdown CoolingBreakdown `json:"breakdown"`
}

// CoolingLoad estimates the design cooling load with a simplified CLTD
// method: solar and conduction gains scaled to a 20°F design ΔT, plus
// infiltration, lighting/equipment and occupant gains.
func CoolingLoad(in CoolingInput) CoolingResult {
	deltaT := in.OutdoorTemp - in.IndoorTemp
	tempFactor := deltaT / 20.0

	solar := solarGainBTUFt2 * in.AreaFt2 * tempFactor
	conduction := conductionBTUFt2 * in.AreaFt2 * tempFactor
	infiltration := infiltrationFactor * in.AreaFt2 * deltaT
	internal := (lightingWFt2 + equipmentWFt2) * in.AreaFt2 * wattToBTU
	occupant := (occupantSensible + occupantLatent) * in.Occupancy

	total := solar + conduction + infiltration + internal + occupant
	return CoolingResult{
		LoadBTUH: math.Round(total),
		Breakdown: CoolingBreakdown{
			SolarBTUH:        solar,
			ConductionBTUH:   conduction,
			InfiltrationBTUH: infiltration,
			InternalBTUH:     internal,
			OccupantBTUH:     occupant,
		},
	}
}

type VentilationInput struct {
	AreaFt2   float64 `json:"area_ft2"`
	Occupancy float64 `json:"occupancy"`
	SpaceType string  `json:"space_type"`
}

type VentilationResult struct {
	AirflowCFM float64 `json:"airflow_cfm"`
	SpaceType  string  `json:"space_type"`
}

// VentilationRate returns the required outdoor airflow. Unknown space types
// use the office rates.
func VentilationRate(in VentilationInput) VentilationResult {
	spaceType := in.SpaceType
	rate, ok := ventilationRates[spaceType]
	if !ok {
		spaceType = "office"
		rate = ventilationRates[spaceType]
	}
	cfm := in.Occupancy*rate.PerPerson + in.AreaFt2*rate.PerArea
	return VentilationResult{
		AirflowCFM: math.Round(cfm),
		SpaceType:  spaceType,
	}
}

type CapacityInput struct {
	CoolingLoadBTUH float64 `json:"cooling_load_btu_hr"`
}

type CapacityResult struct {
	Tons float64 `json:"tons"`
}

// EquipmentCapacity converts a cooling load to equipment tonnage, rounded
// up to the next half ton.
func EquipmentCapacity(in CapacityInput) CapacityResult {
	tons := in.CoolingLoadBTUH / 12000.0
	return CapacityResult{Tons: math.Ceil(tons*2) / 2}
}

type DuctInput struct {
	AirflowCFM  float64 `json:"airflow_cfm"`
	VelocityFPM float64 `json:"velocity_fpm"`
}

type DuctResult struct {
	DiameterIn  float64 `json:"diameter_in"`
	VelocityFPM float64 `json:"velocity_fpm"`
}

// DuctSize picks the round duct diameter closest to the diameter needed to
// carry the airflow at the given velocity (default 1000 FPM).
func DuctSize(in DuctInput) DuctResult {
	velocity := in.VelocityFPM
	if velocity <= 0 {
		velocity = 1000
	}
	areaFt2 := in.AirflowCFM / velocity
	diameterIn := 2 * math.Sqrt(areaFt2/math.Pi) * 12
	return DuctResult{
		DiameterIn:  sizing.Closest(ductSizes, diameterIn),
		VelocityFPM: velocity,
	}
}
