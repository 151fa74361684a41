package analysis

import (
	"testing"

	"voyage/domain/passenger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurvivalIndependence_StrongAssociation(t *testing.T) {
	// Every first-class passenger survives, every third-class passenger dies.
	var passengers []passenger.Passenger
	for i := 0; i < 50; i++ {
		passengers = append(passengers, passenger.Passenger{ID: i, Class: 1, Sex: "female", Survived: true})
		passengers = append(passengers, passenger.Passenger{ID: 100 + i, Class: 3, Sex: "male", Survived: false})
	}

	result, err := SurvivalIndependence(passengers, FactorClass)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Levels)
	assert.Equal(t, 1, result.DOF)
	assert.Equal(t, 100, result.SampleSize)
	assert.Greater(t, result.ChiSquare, 50.0)
	assert.Less(t, result.PValue, 0.001)
}

func TestSurvivalIndependence_NoAssociation(t *testing.T) {
	// Survival split evenly within both sexes.
	var passengers []passenger.Passenger
	for i := 0; i < 40; i++ {
		passengers = append(passengers, passenger.Passenger{ID: i, Sex: "female", Survived: i%2 == 0})
		passengers = append(passengers, passenger.Passenger{ID: 100 + i, Sex: "male", Survived: i%2 == 0})
	}

	result, err := SurvivalIndependence(passengers, FactorSex)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, result.ChiSquare, 1e-9)
	assert.InDelta(t, 1.0, result.PValue, 1e-9)
}

func TestSurvivalIndependence_Errors(t *testing.T) {
	_, err := SurvivalIndependence(nil, FactorClass)
	require.Error(t, err)

	_, err = SurvivalIndependence([]passenger.Passenger{{ID: 1, Class: 1}}, FactorClass)
	require.Error(t, err, "a single level cannot form a contingency table")

	_, err = SurvivalIndependence([]passenger.Passenger{{ID: 1}}, Factor("cabin"))
	require.Error(t, err)
}
