package plumbing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalFixtureUnits(t *testing.T) {
	res := TotalFixtureUnits(FixtureUnitsInput{FixtureCounts: map[string]float64{
		"water_closet": 10,
		"lavatory":     10,
		"urinal":       4,
	}})
	assert.Equal(t, 37.0, res.SupplyWSFU)   // 22 + 7 + 8
	assert.Equal(t, 48.0, res.DrainageDFU)  // 30 + 10 + 8
}

func TestTotalFixtureUnitsUnknownFixtureCountsAsOne(t *testing.T) {
	res := TotalFixtureUnits(FixtureUnitsInput{FixtureCounts: map[string]float64{
		"bidet": 3,
	}})
	assert.Equal(t, 3.0, res.SupplyWSFU)
	assert.Equal(t, 3.0, res.DrainageDFU)
}

func TestFixtureUnitsToGPMBranches(t *testing.T) {
	assert.Equal(t, 0.0, FixtureUnitsToGPM(0))
	assert.Equal(t, 0.0, FixtureUnitsToGPM(-5))
	assert.InDelta(t, 7.826, FixtureUnitsToGPM(5), 0.001)     // √wsfu·3.5
	assert.InDelta(t, 42.074, FixtureUnitsToGPM(40), 0.001)   // wsfu^0.45·8
	assert.InDelta(t, 86.316, FixtureUnitsToGPM(100), 0.001)  // wsfu^0.38·15
	assert.InDelta(t, 176.064, FixtureUnitsToGPM(500), 0.001) // wsfu^0.35·20
}

func TestFixtureUnitsToGPMMonotonic(t *testing.T) {
	prev := 0.0
	for wsfu := 0.0; wsfu <= 400; wsfu += 0.5 {
		flow := FixtureUnitsToGPM(wsfu)
		assert.GreaterOrEqual(t, flow, prev, "wsfu=%v", wsfu)
		prev = flow
	}
}

func TestSupplyFlow(t *testing.T) {
	assert.Equal(t, 42.1, SupplyFlow(SupplyInput{FixtureUnits: 40}).FlowGPM)
}

func TestPipeSizeVelocityLimited(t *testing.T) {
	// 40 WSFU → 42.1 GPM → 1.85 in at 5 fps → 2 in standard.
	res := PipeSize(PipeSizeInput{FixtureUnits: 40, LengthFt: 100, PressureAvailablePSI: 60})
	assert.Equal(t, 2.0, res.DiameterIn)
	assert.InDelta(t, 0.72, res.PressureLossPSI, 0.01)
}

func TestPipeSizeBumpsOnPressureLoss(t *testing.T) {
	// Same flow over 2000 ft with only 2 psi to spend: 14.5 psi loss at
	// 2 in forces the next size up.
	res := PipeSize(PipeSizeInput{FixtureUnits: 40, LengthFt: 2000, PressureAvailablePSI: 2})
	assert.Equal(t, 2.5, res.DiameterIn)
}

func TestPipeSizeMonotonicInFixtureUnits(t *testing.T) {
	prev := 0.0
	for wsfu := 1.0; wsfu <= 1000; wsfu += 1 {
		d := PipeSize(PipeSizeInput{FixtureUnits: wsfu, LengthFt: 50, PressureAvailablePSI: 60}).DiameterIn
		assert.GreaterOrEqual(t, d, prev)
		assert.Contains(t, pipeSizes, d)
		prev = d
	}
}

func TestFrictionLoss(t *testing.T) {
	res := FrictionLoss(FrictionInput{FlowGPM: 50, DiameterIn: 1.5, LengthFt: 200})
	assert.Equal(t, 4.04, res.LossPSIPer100Ft)
	assert.Equal(t, 8.09, res.LossPSI)
}

func TestFrictionLossZeroFlow(t *testing.T) {
	res := FrictionLoss(FrictionInput{FlowGPM: 0, DiameterIn: 2, LengthFt: 100})
	assert.Equal(t, 0.0, res.LossPSIPer100Ft)
}

func TestDrainPipeSize(t *testing.T) {
	assert.Equal(t, 1.5, DrainPipeSize(DrainInput{DFU: 3}).DiameterIn)
	assert.Equal(t, 3.0, DrainPipeSize(DrainInput{DFU: 18}).DiameterIn)
	assert.Equal(t, 4.0, DrainPipeSize(DrainInput{DFU: 21}).DiameterIn)
	assert.Equal(t, 12.0, DrainPipeSize(DrainInput{DFU: 9999}).DiameterIn)
}

func TestDrainPipeSizeSlopeAdjustment(t *testing.T) {
	// 180 DFU at 1/2 in/ft adjusts to 127.3, still a 4 in drain; at the
	// default slope 180 also fits in 4 in, but 170→ messy; verify factor.
	res := DrainPipeSize(DrainInput{DFU: 180, Slope: 0.5})
	assert.InDelta(t, 127.28, res.AdjustedDFU, 0.01)
	assert.Equal(t, 4.0, res.DiameterIn)

	// Steeper slope can drop a size: 24 DFU needs 4 in at default slope
	// but fits a 3 in drain at 1/2 in/ft (adjusted 16.97).
	assert.Equal(t, 4.0, DrainPipeSize(DrainInput{DFU: 24}).DiameterIn)
	assert.Equal(t, 3.0, DrainPipeSize(DrainInput{DFU: 24, Slope: 0.5}).DiameterIn)
}

func TestDrainPipeSizeMonotonic(t *testing.T) {
	prev := 0.0
	for dfu := 1.0; dfu <= 5000; dfu += 7 {
		d := DrainPipeSize(DrainInput{DFU: dfu}).DiameterIn
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestWaterHeaterSize(t *testing.T) {
	res := WaterHeaterSize(WaterHeaterInput{FixtureCount: 20})
	assert.Equal(t, 100.0, res.TankGal)
	assert.Equal(t, 68.0, res.RecoveryGPH)
}

func TestWaterHeaterSizeCustomPeak(t *testing.T) {
	res := WaterHeaterSize(WaterHeaterInput{FixtureCount: 20, PeakDemandFactor: 0.5})
	assert.Equal(t, 120.0, res.TankGal)
	assert.Equal(t, 84.0, res.RecoveryGPH)
}
