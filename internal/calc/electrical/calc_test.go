package electrical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDemandLoad(t *testing.T) {
	res := DemandLoad(DemandInput{ConnectedLoadW: 85000, DemandFactor: 0.8})
	assert.Equal(t, 68000.0, res.DemandLoadW)
}

func TestCurrentThreePhase(t *testing.T) {
	res := Current(CurrentInput{LoadW: 50000, Voltage: 480, Phases: 3, PowerFactor: 0.85})
	assert.Equal(t, 70.8, res.CurrentA)
}

func TestCurrentSinglePhase(t *testing.T) {
	res := Current(CurrentInput{LoadW: 2400, Voltage: 120, Phases: 1, PowerFactor: 1.0})
	assert.Equal(t, 20.0, res.CurrentA)
}

func TestCurrentDefaultsPowerFactor(t *testing.T) {
	res := Current(CurrentInput{LoadW: 2400, Voltage: 120, Phases: 1})
	assert.Equal(t, 20.0, res.CurrentA)
}

func TestBreakerSize(t *testing.T) {
	assert.Equal(t, 80.0, BreakerSize(BreakerInput{CurrentA: 70.8}).BreakerA)
	assert.Equal(t, 90.0, BreakerSize(BreakerInput{CurrentA: 70.8, Continuous: true}).BreakerA)
	assert.Equal(t, 15.0, BreakerSize(BreakerInput{CurrentA: 0}).BreakerA)
}

func TestBreakerSizeExhaustedLadderReturnsLargest(t *testing.T) {
	assert.Equal(t, 1200.0, BreakerSize(BreakerInput{CurrentA: 5000}).BreakerA)
}

func TestBreakerSizeMonotonic(t *testing.T) {
	prev := 0.0
	for amps := 1.0; amps <= 1500; amps++ {
		b := BreakerSize(BreakerInput{CurrentA: amps}).BreakerA
		assert.GreaterOrEqual(t, b, prev)
		assert.Contains(t, breakerSizes, b)
		prev = b
	}
}

func TestWireSizeCopper75(t *testing.T) {
	// 100 A / 0.8 = 125 A required → 1 AWG (130 A).
	res := WireSize(WireInput{CurrentA: 100, Material: "copper", TempRatingC: 75})
	assert.Equal(t, "1 AWG", res.Gauge)
	assert.Equal(t, 130.0, res.AmpacityA)
}

func TestWireSizeTempCorrection(t *testing.T) {
	// At 60°C the 1 AWG column derates to 114.4 A, forcing 1/0.
	res := WireSize(WireInput{CurrentA: 100, Material: "copper", TempRatingC: 60})
	assert.Equal(t, "1/0 AWG", res.Gauge)
}

func TestWireSizeAluminum(t *testing.T) {
	res := WireSize(WireInput{CurrentA: 100, Material: "aluminum", TempRatingC: 75})
	assert.Equal(t, "4/0 AWG", res.Gauge)
}

func TestWireSizeExhaustedReturnsLargest(t *testing.T) {
	res := WireSize(WireInput{CurrentA: 400, Material: "copper", TempRatingC: 75})
	assert.Equal(t, "500 kcmil", res.Gauge)
}

func TestVoltageDropThreePhase(t *testing.T) {
	res := VoltageDrop(VoltageDropInput{
		CurrentA:   100,
		DistanceFt: 200,
		Voltage:    480,
		WireGauge:  "3/0 AWG",
		Phases:     3,
	})
	assert.Equal(t, 2.65, res.DropV)
	assert.Equal(t, 0.55, res.DropPercent)
}

func TestVoltageDropSinglePhaseRoundTrip(t *testing.T) {
	res := VoltageDrop(VoltageDropInput{
		CurrentA:   20,
		DistanceFt: 100,
		Voltage:    120,
		WireGauge:  "12 AWG",
		Phases:     1,
	})
	assert.Equal(t, 7.72, res.DropV)
	assert.Equal(t, 6.43, res.DropPercent)
}

func TestVoltageDropUnknownGaugeFallback(t *testing.T) {
	res := VoltageDrop(VoltageDropInput{
		CurrentA:   100,
		DistanceFt: 1000,
		Voltage:    480,
		WireGauge:  "busway",
		Phases:     3,
	})
	assert.Equal(t, 17.32, res.DropV) // √3·100·0.1
	assert.Equal(t, 3.61, res.DropPercent)
}

func TestShortCircuitCurrent(t *testing.T) {
	res := ShortCircuitCurrent(ShortCircuitInput{TransformerKVA: 1000, Voltage: 480, ImpedancePct: 5})
	assert.Equal(t, 24056.0, res.FaultCurrentA)
}
