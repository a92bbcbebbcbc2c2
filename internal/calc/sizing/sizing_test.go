package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextAtLeast(t *testing.T) {
	ladder := []float64{15, 20, 30, 50}

	assert.Equal(t, 15.0, NextAtLeast(ladder, 0))
	assert.Equal(t, 15.0, NextAtLeast(ladder, 15))
	assert.Equal(t, 20.0, NextAtLeast(ladder, 15.1))
	assert.Equal(t, 50.0, NextAtLeast(ladder, 49))
}

func TestNextAtLeastExhaustedReturnsLargest(t *testing.T) {
	ladder := []float64{15, 20, 30, 50}
	assert.Equal(t, 50.0, NextAtLeast(ladder, 5000))
}

func TestClosest(t *testing.T) {
	ladder := []float64{6, 8, 10, 12}

	assert.Equal(t, 6.0, Closest(ladder, 1))
	assert.Equal(t, 8.0, Closest(ladder, 8.4))
	assert.Equal(t, 10.0, Closest(ladder, 9.2))
	assert.Equal(t, 12.0, Closest(ladder, 40))
	// tie goes to the smaller size
	assert.Equal(t, 6.0, Closest(ladder, 7))
}

func TestSelectEntry(t *testing.T) {
	entries := []Entry{
		{Capacity: 3, Size: 1.5},
		{Capacity: 6, Size: 2},
		{Capacity: 20, Size: 3},
	}

	assert.Equal(t, 1.5, SelectEntry(entries, 2).Size)
	assert.Equal(t, 2.0, SelectEntry(entries, 6).Size)
	assert.Equal(t, 3.0, SelectEntry(entries, 7).Size)
	assert.Equal(t, 3.0, SelectEntry(entries, 999).Size)
}
