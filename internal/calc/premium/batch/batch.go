package batch

import (
	"fmt"

	autodesign "github.com/Hetgajjar1/MEP-Flow-Designer/internal/calc/premium/autodesign"
)

type RoomBatchInput struct {
	Items []autodesign.RoomInput `json:"items"`
}

type RoomBatchResult struct {
	Results []autodesign.RoomResult `json:"results"`

	// Building totals over all rooms.
	TotalHeatingBTUH float64 `json:"total_heating_btu_hr"`
	TotalCoolingBTUH float64 `json:"total_cooling_btu_hr"`
	TotalTons        float64 `json:"total_tons"`
}

// CalculateRooms runs the HVAC auto-sizer over every space and sums the
// building loads.
func CalculateRooms(in RoomBatchInput) (RoomBatchResult, error) {
	if len(in.Items) == 0 {
		return RoomBatchResult{}, fmt.Errorf("no items")
	}
	out := RoomBatchResult{Results: make([]autodesign.RoomResult, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := autodesign.Room(item)
		if err != nil {
			return RoomBatchResult{}, err
		}
		out.Results = append(out.Results, res)
		out.TotalHeatingBTUH += res.HeatingBTUH
		out.TotalCoolingBTUH += res.CoolingBTUH
		out.TotalTons += res.Tons
	}
	return out, nil
}
