package core

import (
	"math"
	"testing"
)

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	interval := NewInterval(0, 1)

	tests := []struct {
		name      string
		x         float64
		contains  bool
		surrounds bool
	}{
		{"below", -0.5, false, false},
		{"min boundary", 0, true, false},
		{"inside", 0.5, true, true},
		{"max boundary", 1, true, false},
		{"above", 1.5, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if interval.Contains(tt.x) != tt.contains {
				t.Errorf("Contains(%f) = %t, expected %t", tt.x, !tt.contains, tt.contains)
			}
			if interval.Surrounds(tt.x) != tt.surrounds {
				t.Errorf("Surrounds(%f) = %t, expected %t", tt.x, !tt.surrounds, tt.surrounds)
			}
		})
	}
}

func TestInterval_Clamp(t *testing.T) {
	interval := NewInterval(0, 0.999)

	tests := []struct {
		x        float64
		expected float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{1.2, 0.999},
		{0.999, 0.999},
	}

	for _, tt := range tests {
		if got := interval.Clamp(tt.x); got != tt.expected {
			t.Errorf("Clamp(%f) = %f, expected %f", tt.x, got, tt.expected)
		}
	}
}

func TestInterval_EmptyAndUniverse(t *testing.T) {
	empty := EmptyInterval()
	universe := UniverseInterval()

	for _, x := range []float64{-1e300, 0, 1e300} {
		if empty.Contains(x) {
			t.Errorf("Empty interval should not contain %g", x)
		}
		if !universe.Surrounds(x) {
			t.Errorf("Universe interval should surround %g", x)
		}
	}

	if !math.IsInf(universe.Size(), 1) {
		t.Errorf("Expected infinite universe size, got %f", universe.Size())
	}
}
