package hvac

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeatingLoadDesignDay(t *testing.T) {
	// 1000 ft² at 70°F design ΔT: envelope 30000, infiltration 1260,
	// occupants -2500.
	res := HeatingLoad(HeatingInput{
		AreaFt2:     1000,
		Occupancy:   10,
		OutdoorTemp: 0,
		IndoorTemp:  70,
	})

	assert.Equal(t, 28760.0, res.LoadBTUH)
	assert.Equal(t, 30000.0, res.Breakdown.EnvelopeBTUH)
	assert.Equal(t, 1260.0, res.Breakdown.InfiltrationBTUH)
	assert.Equal(t, -2500.0, res.Breakdown.OccupantBTUH)
}

func TestHeatingLoadNeverNegative(t *testing.T) {
	// Dense occupancy in a small, mild space: occupant gains exceed losses.
	res := HeatingLoad(HeatingInput{
		AreaFt2:     100,
		Occupancy:   50,
		OutdoorTemp: 60,
		IndoorTemp:  70,
	})
	assert.Equal(t, 0.0, res.LoadBTUH)
}

func TestCoolingLoadComponents(t *testing.T) {
	res := CoolingLoad(CoolingInput{
		AreaFt2:     1000,
		Occupancy:   10,
		OutdoorTemp: 95,
		IndoorTemp:  75,
	})

	// ΔT = 20 → tempFactor 1.
	assert.Equal(t, 40000.0, res.Breakdown.SolarBTUH)
	assert.Equal(t, 15000.0, res.Breakdown.ConductionBTUH)
	assert.Equal(t, 360.0, res.Breakdown.InfiltrationBTUH)
	assert.InDelta(t, 2.5*1000*3.412, res.Breakdown.InternalBTUH, 0.001)
	assert.Equal(t, 4500.0, res.Breakdown.OccupantBTUH)
	assert.Equal(t, math.Round(40000+15000+360+8530+4500), res.LoadBTUH)
}

func TestVentilationRateBySpaceType(t *testing.T) {
	res := VentilationRate(VentilationInput{AreaFt2: 2000, Occupancy: 20, SpaceType: "classroom"})
	assert.Equal(t, "classroom", res.SpaceType)
	assert.Equal(t, 440.0, res.AirflowCFM) // 20*10 + 2000*0.12
}

func TestVentilationRateUnknownFallsBackToOffice(t *testing.T) {
	res := VentilationRate(VentilationInput{AreaFt2: 1000, Occupancy: 10, SpaceType: "bowling alley"})
	assert.Equal(t, "office", res.SpaceType)
	assert.Equal(t, 110.0, res.AirflowCFM) // 10*5 + 1000*0.06
}

func TestEquipmentCapacityRoundsUpToHalfTon(t *testing.T) {
	assert.Equal(t, 4.0, EquipmentCapacity(CapacityInput{CoolingLoadBTUH: 48000}).Tons)
	assert.Equal(t, 4.5, EquipmentCapacity(CapacityInput{CoolingLoadBTUH: 48001}).Tons)
	assert.Equal(t, 0.5, EquipmentCapacity(CapacityInput{CoolingLoadBTUH: 1}).Tons)
	assert.Equal(t, 0.0, EquipmentCapacity(CapacityInput{CoolingLoadBTUH: 0}).Tons)
}

func TestEquipmentCapacityNeverUndersized(t *testing.T) {
	for _, load := range []float64{100, 11999, 12000, 30000, 123456} {
		tons := EquipmentCapacity(CapacityInput{CoolingLoadBTUH: load}).Tons
		assert.GreaterOrEqual(t, tons, load/12000.0)
		assert.Equal(t, 0.0, math.Mod(tons*2, 1), "tons must be a half-ton multiple")
	}
}

func TestDuctSizeSnapsToStandardDiameters(t *testing.T) {
	// 1000 CFM @ 1000 FPM → 1 ft² → d = 13.54 in → closest standard 14.
	res := DuctSize(DuctInput{AirflowCFM: 1000, VelocityFPM: 1000})
	assert.Equal(t, 14.0, res.DiameterIn)

	// default velocity 1000 FPM
	res = DuctSize(DuctInput{AirflowCFM: 1000})
	assert.Equal(t, 14.0, res.DiameterIn)
	assert.Equal(t, 1000.0, res.VelocityFPM)
}

func TestDuctSizeMonotonicInAirflow(t *testing.T) {
	prev := 0.0
	for cfm := 50.0; cfm <= 30000; cfm += 50 {
		d := DuctSize(DuctInput{AirflowCFM: cfm, VelocityFPM: 1000}).DiameterIn
		assert.GreaterOrEqual(t, d, prev)
		assert.Contains(t, ductSizes, d)
		prev = d
	}
}

func TestDuctSizeCapsAtLargestStandard(t *testing.T) {
	res := DuctSize(DuctInput{AirflowCFM: 1e6, VelocityFPM: 1000})
	assert.Equal(t, 48.0, res.DiameterIn)
}
