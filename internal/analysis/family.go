package analysis

import (
	"sort"

	"voyage/domain/passenger"

	"github.com/montanaflynn/stats"
)

// FamilyGroupRow summarizes fares for one (family size, class) group.
type FamilyGroupRow struct {
	FamilySize  int     `json:"family_size"`
	Class       int     `json:"pclass"`
	NPassengers int     `json:"n_passengers"`
	AvgFare     float64 `json:"avg_fare"`
	MinFare     float64 `json:"min_fare"`
	MaxFare     float64 `json:"max_fare"`
}

// SurnameFamilyRow summarizes survival for one surname-derived family.
type SurnameFamilyRow struct {
	Surname      string  `json:"surname"`
	FamilySize   int     `json:"family_size"`
	NPassengers  int     `json:"n_passengers"`
	NSurvivors   int     `json:"n_survivors"`
	SurvivalRate float64 `json:"survival_rate"`
}

// FamilyGroups groups passengers by (family size, class) and computes the
// count plus average/min/max fare per group, sorted by class then family
// size ascending. Passengers with a missing fare still count toward
// n_passengers but contribute nothing to the fare statistics; a group with
// no known fares reports 0 for all three.
func FamilyGroups(passengers []passenger.Passenger) []FamilyGroupRow {
	type groupKey struct {
		size  int
		class int
	}
	type groupAcc struct {
		count int
		fares []float64
	}

	groups := make(map[groupKey]*groupAcc)
	for _, p := range passengers {
		key := groupKey{size: p.FamilySize(), class: p.Class}
		acc, exists := groups[key]
		if !exists {
			acc = &groupAcc{}
			groups[key] = acc
		}
		acc.count++
		if p.Fare != nil {
			acc.fares = append(acc.fares, *p.Fare)
		}
	}

	keys := make([]groupKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].class != keys[j].class {
			return keys[i].class < keys[j].class
		}
		return keys[i].size < keys[j].size
	})

	rows := make([]FamilyGroupRow, 0, len(keys))
	for _, key := range keys {
		acc := groups[key]
		row := FamilyGroupRow{
			FamilySize:  key.size,
			Class:       key.class,
			NPassengers: acc.count,
		}
		if len(acc.fares) > 0 {
			row.AvgFare, _ = stats.Mean(acc.fares)
			row.MinFare, _ = stats.Min(acc.fares)
			row.MaxFare, _ = stats.Max(acc.fares)
		}
		rows = append(rows, row)
	}
	return rows
}

// SurnameFamilies groups passengers traveling with family (family size > 1)
// by surname and computes the survival rate per family. The reported family
// size is the first member's value in dataset order; surname-derived
// families are an approximation, so members may disagree. Rows sort by
// family size descending, then surname ascending.
func SurnameFamilies(passengers []passenger.Passenger) []SurnameFamilyRow {
	families := make(map[string]*SurnameFamilyRow)
	order := make([]string, 0)

	for _, p := range passengers {
		if p.FamilySize() <= 1 {
			continue
		}
		surname := p.Surname()
		fam, exists := families[surname]
		if !exists {
			fam = &SurnameFamilyRow{
				Surname:    surname,
				FamilySize: p.FamilySize(),
			}
			families[surname] = fam
			order = append(order, surname)
		}
		fam.NPassengers++
		if p.Survived {
			fam.NSurvivors++
		}
	}

	rows := make([]SurnameFamilyRow, 0, len(order))
	for _, surname := range order {
		fam := families[surname]
		fam.SurvivalRate = survivalRate(fam.NSurvivors, fam.NPassengers)
		rows = append(rows, *fam)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].FamilySize != rows[j].FamilySize {
			return rows[i].FamilySize > rows[j].FamilySize
		}
		return rows[i].Surname < rows[j].Surname
	})
	return rows
}
