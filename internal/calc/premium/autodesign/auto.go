package autodesign

import (
	"fmt"

	hvac "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/hvac"
)

// RoomInput describes one conditioned space for a full HVAC pass: loads,
// ventilation, equipment and duct in a single call.
type RoomInput struct {
	AreaFt2     float64 `json:"area_ft2"`
	Occupancy   float64 `json:"occupancy"`
	OutdoorTemp float64 `json:"outdoor_temp_f"`
	IndoorTemp  float64 `json:"indoor_temp_f"`
	SpaceType   string  `json:"space_type"`
	VelocityFPM float64 `json:"velocity_fpm"`
}

type RoomResult struct {
	HeatingBTUH    float64 `json:"heating_btu_hr"`
	CoolingBTUH    float64 `json:"cooling_btu_hr"`
	VentilationCFM float64 `json:"ventilation_cfm"`
	Tons           float64 `json:"tons"`
	DuctIn         float64 `json:"duct_in"`
	SupplyCFM      float64 `json:"supply_cfm"`
	Notes          string  `json:"notes"`
}

// Room runs the whole HVAC chain for a space. Supply airflow is estimated
// at 400 CFM per ton, the duct is sized for it.
func Room(in RoomInput) (RoomResult, error) {
	if in.AreaFt2 <= 0 {
		return RoomResult{}, fmt.Errorf("invalid area")
	}

	heating := hvac.HeatingLoad(hvac.HeatingInput{
		AreaFt2:     in.AreaFt2,
		Occupancy:   in.Occupancy,
		OutdoorTemp: in.OutdoorTemp,
		IndoorTemp:  in.IndoorTemp,
	})
	cooling := hvac.CoolingLoad(hvac.CoolingInput{
		AreaFt2:     in.AreaFt2,
		Occupancy:   in.Occupancy,
		OutdoorTemp: in.OutdoorTemp,
		IndoorTemp:  in.IndoorTemp,
	})
	ventilation := hvac.VentilationRate(hvac.VentilationInput{
		AreaFt2:   in.AreaFt2,
		Occupancy: in.Occupancy,
		SpaceType: in.SpaceType,
	})
	capacity := hvac.EquipmentCapacity(hvac.CapacityInput{CoolingLoadBTUH: cooling.LoadBTUH})

	supplyCFM := capacity.Tons * 400
	duct := hvac.DuctSize(hvac.DuctInput{AirflowCFM: supplyCFM, VelocityFPM: in.VelocityFPM})

	return RoomResult{
		HeatingBTUH:    heating.LoadBTUH,
		CoolingBTUH:    cooling.LoadBTUH,
		VentilationCFM: ventilation.AirflowCFM,
		Tons:           capacity.Tons,
		DuctIn:         duct.DiameterIn,
		SupplyCFM:      supplyCFM,
		Notes:          "Auto-sized space (supply air at 400 CFM/ton).",
	}, nil
}
