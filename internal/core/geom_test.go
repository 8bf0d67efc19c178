package core

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := Pt(4, 0)
	b := Pt(2, 1)

	if got := a.Add(b); got != Pt(6, 1) {
		t.Errorf("Add() = %v, expected (6, 1)", got)
	}
	if got := a.Sub(b); got != Pt(2, -1) {
		t.Errorf("Sub() = %v, expected (2, -1)", got)
	}
	if got := a.Add(b).Sub(b); got != a {
		t.Errorf("Add then Sub = %v, expected %v", got, a)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	for _, a := range Actions {
		if a.String() == "Unknown" || a.String() == "None" {
			t.Errorf("action %d has no name", a)
		}
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
