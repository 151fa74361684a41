package analysis

import (
	"testing"

	"voyage/domain/passenger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fare(v float64) *float64 { return &v }

func TestFamilyGroups_FareStats(t *testing.T) {
	passengers := []passenger.Passenger{
		{ID: 1, Class: 3, SibSp: 1, Parch: 0, Fare: fare(10)}, // family size 2
		{ID: 2, Class: 3, SibSp: 1, Parch: 0, Fare: fare(20)}, // family size 2
		{ID: 3, Class: 3, SibSp: 0, Parch: 0, Fare: fare(7)},  // family size 1
		{ID: 4, Class: 1, SibSp: 0, Parch: 0, Fare: fare(80)}, // family size 1
	}

	rows := FamilyGroups(passengers)
	require.Len(t, rows, 3)

	// Sorted by class then family size ascending.
	assert.Equal(t, FamilyGroupRow{FamilySize: 1, Class: 1, NPassengers: 1, AvgFare: 80, MinFare: 80, MaxFare: 80}, rows[0])
	assert.Equal(t, FamilyGroupRow{FamilySize: 1, Class: 3, NPassengers: 1, AvgFare: 7, MinFare: 7, MaxFare: 7}, rows[1])
	assert.Equal(t, FamilyGroupRow{FamilySize: 2, Class: 3, NPassengers: 2, AvgFare: 15, MinFare: 10, MaxFare: 20}, rows[2])
}

func TestFamilyGroups_MissingFares(t *testing.T) {
	passengers := []passenger.Passenger{
		{ID: 1, Class: 2, SibSp: 0, Parch: 1, Fare: nil},
		{ID: 2, Class: 2, SibSp: 0, Parch: 1, Fare: fare(30)},
	}

	rows := FamilyGroups(passengers)
	require.Len(t, rows, 1)
	// Missing fares count toward the group but not toward the statistics.
	assert.Equal(t, 2, rows[0].NPassengers)
	assert.Equal(t, 30.0, rows[0].AvgFare)

	// A group with no known fares reports zeros rather than NaN.
	rows = FamilyGroups([]passenger.Passenger{{ID: 3, Class: 1, Fare: nil}})
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].AvgFare)
	assert.Equal(t, 0.0, rows[0].MinFare)
	assert.Equal(t, 0.0, rows[0].MaxFare)
}

func TestSurnameFamilies(t *testing.T) {
	passengers := []passenger.Passenger{
		{ID: 1, Name: "Smith, John", SibSp: 1, Parch: 2, Survived: true},   // size 4
		{ID: 2, Name: "Smith, Jane", SibSp: 1, Parch: 2, Survived: false},  // size 4
		{ID: 3, Name: "Jones, Alice", SibSp: 1, Parch: 0, Survived: true},  // size 2
		{ID: 4, Name: "Solo, Han", SibSp: 0, Parch: 0, Survived: true},     // size 1, excluded
		{ID: 5, Name: "Brown, Charlie", SibSp: 0, Parch: 1, Survived: false}, // size 2
	}

	rows := SurnameFamilies(passengers)
	require.Len(t, rows, 3)

	// Sorted by family size desc, surname asc.
	assert.Equal(t, "Smith", rows[0].Surname)
	assert.Equal(t, 4, rows[0].FamilySize)
	assert.Equal(t, 2, rows[0].NPassengers)
	assert.Equal(t, 0.5, rows[0].SurvivalRate)

	assert.Equal(t, "Brown", rows[1].Surname)
	assert.Equal(t, "Jones", rows[2].Surname)
}

func TestSurnameFamilies_FirstMemberSize(t *testing.T) {
	// Surname-derived families are an approximation: sizes may disagree, and
	// the first member's value wins.
	passengers := []passenger.Passenger{
		{ID: 1, Name: "Asplund, Mr. Carl", SibSp: 1, Parch: 5},
		{ID: 2, Name: "Asplund, Master. Edvin", SibSp: 4, Parch: 2},
	}

	rows := SurnameFamilies(passengers)
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].FamilySize)
	assert.Equal(t, 2, rows[0].NPassengers)
}
