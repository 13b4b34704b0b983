// Copyright 2026 The kd3 (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kd3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected string
	}{
		{"Zero", Box{}, "[0,0,0,0,0,0]"},
		{"Integers", Box{Min: [3]float64{-1, 2, -3}, Max: [3]float64{4, -5, 6}}, "[-1,2,-3,4,-5,6]"},
		{"Exact", Box{Min: [3]float64{-100.5, -200.25, 0}, Max: [3]float64{1234.125, 5678.0625, 0.5}}, "[-100.5,-200.25,0,1234.125,5678.0625,0.5]"},
		{"Rounded", Box{Min: [3]float64{-100000.0625, 123.015625, 0}, Max: [3]float64{99.0078125, -2.001953125, 0}}, "[-100000.06,123.01562,0,99.007812,-2.0019531,0]"},
		{"Unbounded", Unbounded, "[-Inf,-Inf,-Inf,+Inf,+Inf,+Inf]"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.String()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestCube(t *testing.T) {
	t.Run("Panic", func(t *testing.T) {
		assert.PanicsWithValue(t, "kd3: negative cube apothem -0.25", func() {
			Cube(0, 0, 0, -0.25)
		})
	})

	t.Run("Expand", func(t *testing.T) {
		testCases := []struct {
			name             string
			x, y, z, apothem float64
			expected         Box
		}{
			{
				name:     "Degenerate",
				x:        1, y: 2, z: 3, apothem: 0,
				expected: Box{Min: [3]float64{1, 2, 3}, Max: [3]float64{1, 2, 3}},
			},
			{
				name:     "Unit",
				x:        0.5, y: 0.5, z: 0.5, apothem: 0.5,
				expected: Box{Max: [3]float64{1, 1, 1}},
			},
			{
				name:     "Offset",
				x:        -10, y: 0, z: 0, apothem: 9.999,
				expected: Box{Min: [3]float64{-19.999, -9.999, -9.999}, Max: [3]float64{-0.001, 9.999, 9.999}},
			},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				actual := Cube(testCase.x, testCase.y, testCase.z, testCase.apothem)

				assert.Equal(t, testCase.expected, actual)
			})
		}
	})
}

func TestBox_Contains(t *testing.T) {
	unit := Box{Max: [3]float64{1, 1, 1}}

	testCases := []struct {
		name     string
		x, y, z  float64
		expected bool
	}{
		{"Interior", 0.5, 0.5, 0.5, true},
		{"Corner", 0, 0, 0, true},
		{"OppositeCorner", 1, 1, 1, true},
		{"Face", 0.5, 0.5, 1, true},
		{"Edge", 0, 1, 0.5, true},
		{"OutsideX", 1.0001, 0.5, 0.5, false},
		{"OutsideY", 0.5, -0.0001, 0.5, false},
		{"OutsideZ", 0.5, 0.5, 2, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := unit.contains(testCase.x, testCase.y, testCase.z)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_Encloses(t *testing.T) {
	unit := Box{Max: [3]float64{1, 1, 1}}

	testCases := []struct {
		name     string
		domain   Box
		expected bool
	}{
		{"Self", unit, true},
		{"Interior", Box{Min: [3]float64{0.25, 0.25, 0.25}, Max: [3]float64{0.75, 0.75, 0.75}}, true},
		{"SharedFace", Box{Min: [3]float64{0, 0.25, 0.25}, Max: [3]float64{0.5, 0.75, 0.75}}, true},
		{"PokesOutMax", Box{Min: [3]float64{0.25, 0.25, 0.25}, Max: [3]float64{0.75, 1.25, 0.75}}, false},
		{"PokesOutMin", Box{Min: [3]float64{-0.25, 0.25, 0.25}, Max: [3]float64{0.75, 0.75, 0.75}}, false},
		{"Covers", Box{Min: [3]float64{-1, -1, -1}, Max: [3]float64{2, 2, 2}}, false},
		{"Disjoint", Box{Min: [3]float64{5, 5, 5}, Max: [3]float64{6, 6, 6}}, false},
		{"Unbounded", Unbounded, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := unit.encloses(&testCase.domain)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBox_Intersects(t *testing.T) {
	unit := Box{Max: [3]float64{1, 1, 1}}

	testCases := []struct {
		name     string
		domain   Box
		expected bool
	}{
		{"Self", unit, true},
		{"Interior", Box{Min: [3]float64{0.25, 0.25, 0.25}, Max: [3]float64{0.75, 0.75, 0.75}}, true},
		{"Covers", Box{Min: [3]float64{-1, -1, -1}, Max: [3]float64{2, 2, 2}}, true},
		{"Overlap", Box{Min: [3]float64{0.5, 0.5, 0.5}, Max: [3]float64{2, 2, 2}}, true},
		{"TouchingCorner", Box{Min: [3]float64{1, 1, 1}, Max: [3]float64{2, 2, 2}}, true},
		{"TouchingFace", Box{Min: [3]float64{1, 0, 0}, Max: [3]float64{2, 1, 1}}, true},
		{"SeparateX", Box{Min: [3]float64{1.5, 0, 0}, Max: [3]float64{2, 1, 1}}, false},
		{"SeparateY", Box{Min: [3]float64{0, -2, 0}, Max: [3]float64{1, -0.5, 1}}, false},
		{"SeparateZ", Box{Min: [3]float64{0, 0, 1.0001}, Max: [3]float64{1, 1, 2}}, false},
		{"Unbounded", Unbounded, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := unit.intersects(&testCase.domain)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestUnbounded(t *testing.T) {
	for a := axisX; a < numAxes; a++ {
		assert.True(t, math.IsInf(Unbounded.Min[a], -1))
		assert.True(t, math.IsInf(Unbounded.Max[a], 1))
	}
}
