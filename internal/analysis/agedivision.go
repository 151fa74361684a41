package analysis

import (
	"sort"

	"voyage/domain/passenger"

	"github.com/montanaflynn/stats"
)

// AgeDivisionRow is a passenger labeled against their class's median age.
type AgeDivisionRow struct {
	PassengerID    int     `json:"id"`
	Class          int     `json:"pclass"`
	Age            float64 `json:"age"`
	Survived       bool    `json:"survived"`
	OlderPassenger bool    `json:"older_passenger"`
}

// DivisionSurvivalRow aggregates survival per (class, older_passenger).
type DivisionSurvivalRow struct {
	Class          int     `json:"pclass"`
	OlderPassenger bool    `json:"older_passenger"`
	NPassengers    int     `json:"n_passengers"`
	NSurvivors     int     `json:"n_survivors"`
	SurvivalRate   float64 `json:"survival_rate"`
}

// ClassMedianAges computes the median age per class over passengers with a
// known age. The median is the order-statistics median: the mean of the two
// middle values for even counts. Classes with no known ages are absent from
// the map.
func ClassMedianAges(passengers []passenger.Passenger) map[int]float64 {
	agesByClass := make(map[int][]float64)
	for _, p := range passengers {
		if p.Age == nil {
			continue
		}
		agesByClass[p.Class] = append(agesByClass[p.Class], *p.Age)
	}

	medians := make(map[int]float64, len(agesByClass))
	for class, ages := range agesByClass {
		median, err := stats.Median(ages)
		if err != nil {
			continue
		}
		medians[class] = median
	}
	return medians
}

// DetermineAgeDivision labels each passenger as older than their class's
// median age. A passenger exactly at the median is not older.
//
// Policy: passengers with unknown age have no defined label and are excluded
// from the output, which keeps every downstream aggregation over the label
// consistent.
func DetermineAgeDivision(passengers []passenger.Passenger) []AgeDivisionRow {
	medians := ClassMedianAges(passengers)

	rows := make([]AgeDivisionRow, 0, len(passengers))
	for _, p := range passengers {
		if p.Age == nil {
			continue
		}
		median, ok := medians[p.Class]
		if !ok {
			continue
		}
		rows = append(rows, AgeDivisionRow{
			PassengerID:    p.ID,
			Class:          p.Class,
			Age:            *p.Age,
			Survived:       p.Survived,
			OlderPassenger: *p.Age > median,
		})
	}
	return rows
}

// AgeDivisionSurvival groups age-division rows by (class, older_passenger)
// and computes survival statistics, sorted by class ascending with the
// younger half first.
func AgeDivisionSurvival(rows []AgeDivisionRow) []DivisionSurvivalRow {
	type groupKey struct {
		class int
		older bool
	}

	groups := make(map[groupKey]*DivisionSurvivalRow)
	for _, row := range rows {
		key := groupKey{class: row.Class, older: row.OlderPassenger}
		cell, exists := groups[key]
		if !exists {
			cell = &DivisionSurvivalRow{Class: row.Class, OlderPassenger: row.OlderPassenger}
			groups[key] = cell
		}
		cell.NPassengers++
		if row.Survived {
			cell.NSurvivors++
		}
	}

	out := make([]DivisionSurvivalRow, 0, len(groups))
	for _, cell := range groups {
		cell.SurvivalRate = survivalRate(cell.NSurvivors, cell.NPassengers)
		out = append(out, *cell)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Class != out[j].Class {
			return out[i].Class < out[j].Class
		}
		return !out[i].OlderPassenger && out[j].OlderPassenger
	})
	return out
}
