package analysis

import (
	"testing"

	"voyage/domain/passenger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassMedianAges(t *testing.T) {
	passengers := []passenger.Passenger{
		{ID: 1, Class: 1, Age: age(20)},
		{ID: 2, Class: 1, Age: age(30)},
		{ID: 3, Class: 1, Age: age(40)},
		{ID: 4, Class: 2, Age: age(10)},
		{ID: 5, Class: 2, Age: age(20)},
		{ID: 6, Class: 2, Age: nil}, // excluded from the median
	}

	medians := ClassMedianAges(passengers)
	assert.Equal(t, 30.0, medians[1])
	assert.Equal(t, 15.0, medians[2]) // even count: mean of the two middle values
}

func TestDetermineAgeDivision_MedianTie(t *testing.T) {
	passengers := []passenger.Passenger{
		{ID: 1, Class: 1, Age: age(20)},
		{ID: 2, Class: 1, Age: age(30)},
		{ID: 3, Class: 1, Age: age(40)},
	}

	rows := DetermineAgeDivision(passengers)
	require.Len(t, rows, 3)

	byID := make(map[int]AgeDivisionRow, len(rows))
	for _, row := range rows {
		byID[row.PassengerID] = row
	}

	assert.False(t, byID[1].OlderPassenger)
	assert.False(t, byID[2].OlderPassenger, "a passenger at the median is not older")
	assert.True(t, byID[3].OlderPassenger)
}

func TestDetermineAgeDivision_ExcludesUnknownAges(t *testing.T) {
	passengers := []passenger.Passenger{
		{ID: 1, Class: 3, Age: age(25)},
		{ID: 2, Class: 3, Age: nil},
	}

	rows := DetermineAgeDivision(passengers)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].PassengerID)
}

func TestAgeDivisionSurvival(t *testing.T) {
	rows := []AgeDivisionRow{
		{PassengerID: 1, Class: 1, Age: 40, Survived: true, OlderPassenger: true},
		{PassengerID: 2, Class: 1, Age: 50, Survived: false, OlderPassenger: true},
		{PassengerID: 3, Class: 1, Age: 20, Survived: true, OlderPassenger: false},
		{PassengerID: 4, Class: 2, Age: 60, Survived: false, OlderPassenger: true},
	}

	out := AgeDivisionSurvival(rows)
	require.Len(t, out, 3)

	// Sorted by class, younger half first.
	assert.Equal(t, DivisionSurvivalRow{Class: 1, OlderPassenger: false, NPassengers: 1, NSurvivors: 1, SurvivalRate: 1.0}, out[0])
	assert.Equal(t, DivisionSurvivalRow{Class: 1, OlderPassenger: true, NPassengers: 2, NSurvivors: 1, SurvivalRate: 0.5}, out[1])
	assert.Equal(t, DivisionSurvivalRow{Class: 2, OlderPassenger: true, NPassengers: 1, NSurvivors: 0, SurvivalRate: 0.0}, out[2])
}
