package fire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSprinklerOrdinaryHazard(t *testing.T) {
	res := Sprinkler(SprinklerInput{
		AreaFt2:         20000,
		HazardClass:     "Ordinary I",
		CeilingHeightFt: 15,
	})

	assert.Equal(t, 130.0, res.CoverageFt2)
	assert.Equal(t, 0.15, res.Density)
	assert.Equal(t, 154.0, res.HeadCount)   // ceil(20000/130)
	assert.Equal(t, 225.0, res.FlowRateGPM) // max(1500, 650) · 0.15
	// 20 + 15·0.433 + 0.3·20
	assert.InDelta(t, 32.5, res.PressurePSI, 0.01)
	assert.Equal(t, 3.0, res.PipeSizeIn)
}

func TestSprinklerUnknownHazardFallsBackToLight(t *testing.T) {
	res := Sprinkler(SprinklerInput{AreaFt2: 5000, HazardClass: "Severe", CeilingHeightFt: 10})
	assert.Equal(t, "Light", res.HazardClass)
	assert.Equal(t, 200.0, res.CoverageFt2)
	assert.Equal(t, 0.10, res.Density)
}

func TestSprinklerMainSizeBreakpoints(t *testing.T) {
	cases := map[float64]float64{
		50:   2,
		150:  2.5,
		399:  3,
		400:  4,
		1000: 5,
		1999: 6,
		2000: 8,
	}
	for flow, want := range cases {
		assert.Equal(t, want, sprinklerMainSize(flow), "flow=%v", flow)
	}
}

func TestStandpipeLowRise(t *testing.T) {
	res := Standpipe(StandpipeInput{Floors: 3, BuildingHeightFt: 36})
	assert.Equal(t, 500.0, res.FlowRateGPM)
	assert.Equal(t, 119.19, res.PressurePSI) // 100 + 36·0.433 + 36·0.1
	assert.Equal(t, 4.0, res.PipeSizeIn)
	assert.Equal(t, 3, res.HoseConnections)
}

func TestStandpipeHighRiseCapsFlow(t *testing.T) {
	res := Standpipe(StandpipeInput{Floors: 10, BuildingHeightFt: 120})
	assert.Equal(t, 1250.0, res.FlowRateGPM)
	assert.Equal(t, 163.96, res.PressurePSI)
	assert.Equal(t, 6.0, res.PipeSizeIn)
	assert.Equal(t, 10, res.HoseConnections)
}

func TestStandpipeIntermediateFlow(t *testing.T) {
	res := Standpipe(StandpipeInput{Floors: 5, BuildingHeightFt: 60})
	assert.Equal(t, 1000.0, res.FlowRateGPM) // 500 + 2·250
	assert.Equal(t, 4.0, res.PipeSizeIn)
}

func TestFirePump(t *testing.T) {
	res := FirePump(PumpInput{
		TotalFlowGPM:        750,
		StaticPressurePSI:   40,
		RequiredPressurePSI: 120,
		ElevationFt:         50,
	})

	assert.Equal(t, 1200.0, res.PumpCapacityGPM) // ceil(1125/100)·100
	assert.Equal(t, 110.0, res.PumpPressurePSI)  // 80 + 21.65 + 7.5 → 109.15 → 110
	assert.Equal(t, 115.0, res.Horsepower)
	assert.Equal(t, "Horizontal Split Case", res.PumpType)
}

func TestFirePumpDeficitClampedAtZero(t *testing.T) {
	res := FirePump(PumpInput{TotalFlowGPM: 500, StaticPressurePSI: 150, RequiredPressurePSI: 80})
	assert.Equal(t, 0.0, res.PumpPressurePSI)
	assert.Equal(t, 0.0, res.Horsepower)
}

func TestFirePumpTypeSelection(t *testing.T) {
	highPressure := FirePump(PumpInput{
		TotalFlowGPM:        500,
		StaticPressurePSI:   40,
		RequiredPressurePSI: 200,
		ElevationFt:         100,
	})
	assert.Equal(t, "Vertical Turbine", highPressure.PumpType)

	large := FirePump(PumpInput{
		TotalFlowGPM:        2000,
		StaticPressurePSI:   60,
		RequiredPressurePSI: 120,
	})
	assert.Equal(t, 3000.0, large.PumpCapacityGPM)
	assert.Equal(t, "Horizontal Split Case Large", large.PumpType)
}

func TestHydrantFlow(t *testing.T) {
	res := HydrantFlow(HydrantInput{BuildingAreaFt2: 10000, ConstructionType: "Type III"})
	assert.Equal(t, 1.0, res.Factor)
	// 1.0·√10000·18 = 1800 → nearest 250 → 1750
	assert.Equal(t, 1750.0, res.FlowGPM)
}

func TestHydrantFlowClampAndRounding(t *testing.T) {
	small := HydrantFlow(HydrantInput{BuildingAreaFt2: 100, ConstructionType: "Type I"})
	assert.Equal(t, 500.0, small.FlowGPM)

	big := HydrantFlow(HydrantInput{BuildingAreaFt2: 5e7, ConstructionType: "Type V"})
	assert.Equal(t, 12000.0, big.FlowGPM)

	frame := HydrantFlow(HydrantInput{BuildingAreaFt2: 50000, ConstructionType: "Type V"})
	assert.Equal(t, 4750.0, frame.FlowGPM) // 4829.9 → nearest 250
}

func TestHydrantFlowUnknownConstructionType(t *testing.T) {
	res := HydrantFlow(HydrantInput{BuildingAreaFt2: 10000, ConstructionType: "igloo"})
	assert.Equal(t, 1.0, res.Factor)
}

func TestHeadSpacing(t *testing.T) {
	res := HeadSpacing(SpacingInput{CoverageFt2: 130})
	assert.Equal(t, 11.4, res.MaxSpacingFt)
	assert.Equal(t, 5.7, res.MaxDistanceFt)

	res = HeadSpacing(SpacingInput{CoverageFt2: 225})
	assert.Equal(t, 15.0, res.MaxSpacingFt)
	assert.Equal(t, 7.5, res.MaxDistanceFt)
}
