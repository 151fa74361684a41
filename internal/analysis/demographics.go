package analysis

import (
	"sort"

	"voyage/domain/passenger"
)

// DemographicRow is one (class, sex, age group) cell of the survival table.
type DemographicRow struct {
	Class        int     `json:"pclass"`
	Sex          string  `json:"sex"`
	AgeGroup     string  `json:"age_group"`
	NPassengers  int     `json:"n_passengers"`
	NSurvivors   int     `json:"n_survivors"`
	SurvivalRate float64 `json:"survival_rate"`
}

// SurvivalDemographics groups passengers by (class, sex, age group) and
// computes count, survivor count and survival rate per group.
//
// Policy: the table is sparse (combinations with no members are omitted) and
// passengers with missing age carry no age group, so they are excluded from
// the grouping entirely.
func SurvivalDemographics(passengers []passenger.Passenger) []DemographicRow {
	type groupKey struct {
		class int
		sex   string
		group passenger.AgeGroup
	}

	cells := make(map[groupKey]*DemographicRow)
	for _, p := range passengers {
		group, ok := p.AgeGroup()
		if !ok {
			continue
		}
		key := groupKey{class: p.Class, sex: passenger.NormalizeSex(p.Sex), group: group}
		cell, exists := cells[key]
		if !exists {
			cell = &DemographicRow{
				Class:    key.class,
				Sex:      key.sex,
				AgeGroup: group.String(),
			}
			cells[key] = cell
		}
		cell.NPassengers++
		if p.Survived {
			cell.NSurvivors++
		}
	}

	keys := make([]groupKey, 0, len(cells))
	for key := range cells {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].class != keys[j].class {
			return keys[i].class < keys[j].class
		}
		if keys[i].sex != keys[j].sex {
			return keys[i].sex < keys[j].sex
		}
		return keys[i].group < keys[j].group
	})

	rows := make([]DemographicRow, 0, len(keys))
	for _, key := range keys {
		cell := cells[key]
		cell.SurvivalRate = survivalRate(cell.NSurvivors, cell.NPassengers)
		rows = append(rows, *cell)
	}
	return rows
}

// survivalRate is survivors/passengers, defined as 0 for an empty group so
// no undefined value leaks into downstream tables.
func survivalRate(survivors, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(survivors) / float64(total)
}
