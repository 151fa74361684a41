package ui

import (
	"fmt"
	"math"

	"voyage/internal/analysis"
)

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// ChartPoint is one labeled value in a series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is one named line/bar group.
type ChartSeries struct {
	Name  string       `json:"name"`
	Color string       `json:"color,omitempty"`
	Data  []ChartPoint `json:"data"`
}

// ChartConfig is a render-ready chart description consumed by the front-end
// script; the server never draws anything itself.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis"`
	YAxis      string        `json:"yAxis"`
	ShowLegend bool          `json:"showLegend"`
	Series     []ChartSeries `json:"series"`
}

var ageGroupOrder = []string{"Child", "Teen", "Adult", "Senior"}

func classLabel(class int) string {
	switch class {
	case 1:
		return "1st class"
	case 2:
		return "2nd class"
	case 3:
		return "3rd class"
	}
	return fmt.Sprintf("class %d", class)
}

// BuildDemographicsChart plots survival rate per age group, one series per
// (class, sex) combination present in the table.
func BuildDemographicsChart(rows []analysis.DemographicRow) *ChartConfig {
	if len(rows) == 0 {
		return nil
	}

	rates := make(map[string]map[string]float64) // series name -> age group -> rate
	seriesNames := make([]string, 0)
	for _, row := range rows {
		name := fmt.Sprintf("%s %s", classLabel(row.Class), row.Sex)
		if _, exists := rates[name]; !exists {
			rates[name] = make(map[string]float64)
			seriesNames = append(seriesNames, name)
		}
		rates[name][row.AgeGroup] = row.SurvivalRate
	}

	series := make([]ChartSeries, 0, len(seriesNames))
	for i, name := range seriesNames {
		points := make([]ChartPoint, 0, len(ageGroupOrder))
		for _, group := range ageGroupOrder {
			points = append(points, ChartPoint{Label: group, Value: roundTo3(rates[name][group])})
		}
		series = append(series, ChartSeries{
			Name:  name,
			Color: defaultColors[i%len(defaultColors)],
			Data:  points,
		})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      "Survival Rate by Age Group, Sex, and Passenger Class",
		XAxis:      "Age Group",
		YAxis:      "Survival Rate",
		ShowLegend: true,
		Series:     series,
	}
}

// BuildFamilyChart plots average fare per family size, one series per class.
func BuildFamilyChart(rows []analysis.FamilyGroupRow) *ChartConfig {
	if len(rows) == 0 {
		return nil
	}

	maxSize := 0
	for _, row := range rows {
		if row.FamilySize > maxSize {
			maxSize = row.FamilySize
		}
	}

	fares := make(map[int]map[int]float64) // class -> family size -> avg fare
	classes := make([]int, 0)
	for _, row := range rows {
		if _, exists := fares[row.Class]; !exists {
			fares[row.Class] = make(map[int]float64)
			classes = append(classes, row.Class)
		}
		fares[row.Class][row.FamilySize] = row.AvgFare
	}

	series := make([]ChartSeries, 0, len(classes))
	for i, class := range classes {
		points := make([]ChartPoint, 0, maxSize)
		for size := 1; size <= maxSize; size++ {
			points = append(points, ChartPoint{
				Label: fmt.Sprintf("%d", size),
				Value: roundTo3(fares[class][size]),
			})
		}
		series = append(series, ChartSeries{
			Name:  classLabel(class),
			Color: defaultColors[i%len(defaultColors)],
			Data:  points,
		})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      "Average Fare by Family Size and Passenger Class",
		XAxis:      "Family Size",
		YAxis:      "Average Fare",
		ShowLegend: true,
		Series:     series,
	}
}

// BuildAgeDivisionChart plots survival rate per class, split into the
// older/younger halves around each class's median age.
func BuildAgeDivisionChart(rows []analysis.DivisionSurvivalRow) *ChartConfig {
	if len(rows) == 0 {
		return nil
	}

	younger := ChartSeries{Name: "At or below class median", Color: defaultColors[0]}
	older := ChartSeries{Name: "Above class median", Color: defaultColors[3]}

	seen := make(map[int]bool)
	classes := make([]int, 0)
	rates := make(map[int]map[bool]float64)
	for _, row := range rows {
		if !seen[row.Class] {
			seen[row.Class] = true
			classes = append(classes, row.Class)
			rates[row.Class] = make(map[bool]float64)
		}
		rates[row.Class][row.OlderPassenger] = row.SurvivalRate
	}

	for _, class := range classes {
		label := classLabel(class)
		younger.Data = append(younger.Data, ChartPoint{Label: label, Value: roundTo3(rates[class][false])})
		older.Data = append(older.Data, ChartPoint{Label: label, Value: roundTo3(rates[class][true])})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      "Survival Rate by Class and Age Relative to Class Median",
		XAxis:      "Passenger Class",
		YAxis:      "Survival Rate",
		ShowLegend: true,
		Series:     []ChartSeries{younger, older},
	}
}

// BuildLastNamesChart plots the surname frequency table as a single series.
func BuildLastNamesChart(rows []analysis.NameCount) *ChartConfig {
	if len(rows) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, ChartPoint{Label: row.Surname, Value: float64(row.Count)})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      "Most Common Surnames",
		XAxis:      "Surname",
		YAxis:      "Passengers",
		ShowLegend: false,
		Series: []ChartSeries{{
			Name:  "Passengers",
			Color: defaultColors[0],
			Data:  points,
		}},
	}
}

func roundTo3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
