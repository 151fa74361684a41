package ui

import (
	"testing"

	"voyage/internal/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDemographicsChart(t *testing.T) {
	rows := []analysis.DemographicRow{
		{Class: 1, Sex: "female", AgeGroup: "Adult", NPassengers: 10, NSurvivors: 9, SurvivalRate: 0.9},
		{Class: 1, Sex: "female", AgeGroup: "Child", NPassengers: 2, NSurvivors: 2, SurvivalRate: 1.0},
		{Class: 3, Sex: "male", AgeGroup: "Adult", NPassengers: 20, NSurvivors: 3, SurvivalRate: 0.15},
	}

	chart := BuildDemographicsChart(rows)
	require.NotNil(t, chart)
	assert.Equal(t, "bar", chart.ChartType)
	require.Len(t, chart.Series, 2)

	// Every series covers the full ordered age-group axis.
	for _, series := range chart.Series {
		require.Len(t, series.Data, 4)
		assert.Equal(t, "Child", series.Data[0].Label)
		assert.Equal(t, "Senior", series.Data[3].Label)
	}
	assert.Equal(t, "1st class female", chart.Series[0].Name)
	assert.Equal(t, 1.0, chart.Series[0].Data[0].Value)
	assert.Equal(t, 0.9, chart.Series[0].Data[2].Value)
}

func TestBuildDemographicsChart_Empty(t *testing.T) {
	assert.Nil(t, BuildDemographicsChart(nil))
}

func TestBuildFamilyChart(t *testing.T) {
	rows := []analysis.FamilyGroupRow{
		{FamilySize: 1, Class: 1, NPassengers: 5, AvgFare: 60},
		{FamilySize: 3, Class: 1, NPassengers: 2, AvgFare: 120},
		{FamilySize: 1, Class: 3, NPassengers: 30, AvgFare: 8},
	}

	chart := BuildFamilyChart(rows)
	require.NotNil(t, chart)
	require.Len(t, chart.Series, 2)
	// Axis runs from family size 1 through the largest observed size.
	require.Len(t, chart.Series[0].Data, 3)
	assert.Equal(t, 60.0, chart.Series[0].Data[0].Value)
	assert.Equal(t, 120.0, chart.Series[0].Data[2].Value)
}

func TestBuildAgeDivisionChart(t *testing.T) {
	rows := []analysis.DivisionSurvivalRow{
		{Class: 1, OlderPassenger: false, NPassengers: 50, NSurvivors: 40, SurvivalRate: 0.8},
		{Class: 1, OlderPassenger: true, NPassengers: 50, NSurvivors: 25, SurvivalRate: 0.5},
		{Class: 2, OlderPassenger: false, NPassengers: 40, NSurvivors: 20, SurvivalRate: 0.5},
	}

	chart := BuildAgeDivisionChart(rows)
	require.NotNil(t, chart)
	require.Len(t, chart.Series, 2)
	assert.Equal(t, 0.8, chart.Series[0].Data[0].Value)
	assert.Equal(t, 0.5, chart.Series[1].Data[0].Value)
	// Classes missing one half report 0 for it rather than dropping the bar.
	assert.Equal(t, 0.0, chart.Series[1].Data[1].Value)
}

func TestBuildLastNamesChart(t *testing.T) {
	chart := BuildLastNamesChart([]analysis.NameCount{
		{Surname: "Andersson", Count: 9},
		{Surname: "Sage", Count: 7},
	})
	require.NotNil(t, chart)
	require.Len(t, chart.Series, 1)
	assert.False(t, chart.ShowLegend)
	assert.Equal(t, 9.0, chart.Series[0].Data[0].Value)
}
