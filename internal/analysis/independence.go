package analysis

import (
	"fmt"
	"sort"

	"voyage/domain/passenger"
	"voyage/internal/errors"

	"gonum.org/v1/gonum/stat/distuv"
)

// Factor selects which categorical attribute to test against survival.
type Factor string

const (
	FactorClass Factor = "class"
	FactorSex   Factor = "sex"
)

// IndependenceResult holds a chi-square test of independence between
// survival and a categorical factor.
type IndependenceResult struct {
	Factor     Factor  `json:"factor"`
	Levels     int     `json:"levels"`
	ChiSquare  float64 `json:"chi_square"`
	DOF        int     `json:"dof"`
	PValue     float64 `json:"p_value"`
	SampleSize int     `json:"sample_size"`
}

// SurvivalIndependence runs a chi-square test of independence between the
// survived flag and the given factor over the full passenger list.
func SurvivalIndependence(passengers []passenger.Passenger, factor Factor) (IndependenceResult, error) {
	if factor != FactorClass && factor != FactorSex {
		return IndependenceResult{}, errors.New(errors.CodeInternalError, fmt.Sprintf("unknown factor %q", factor))
	}
	if len(passengers) == 0 {
		return IndependenceResult{}, errors.EmptyInput("no passengers for independence test")
	}

	levelOf := func(p passenger.Passenger) (string, bool) {
		if factor == FactorClass {
			return fmt.Sprintf("%d", p.Class), true
		}
		sex := passenger.NormalizeSex(p.Sex)
		return sex, sex != ""
	}

	// Contingency table: factor level -> [died, survived].
	table := make(map[string]*[2]float64)
	total := 0
	for _, p := range passengers {
		level, ok := levelOf(p)
		if !ok {
			continue
		}
		cell, exists := table[level]
		if !exists {
			cell = &[2]float64{}
			table[level] = cell
		}
		if p.Survived {
			cell[1]++
		} else {
			cell[0]++
		}
		total++
	}

	if len(table) < 2 {
		return IndependenceResult{}, errors.New(errors.CodeInternalError, fmt.Sprintf("factor %q has fewer than two levels", factor))
	}

	levels := make([]string, 0, len(table))
	for level := range table {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	colTotals := [2]float64{}
	rowTotals := make([]float64, len(levels))
	for i, level := range levels {
		cell := table[level]
		rowTotals[i] = cell[0] + cell[1]
		colTotals[0] += cell[0]
		colTotals[1] += cell[1]
	}

	grand := float64(total)
	chiSq := 0.0
	for i, level := range levels {
		cell := table[level]
		for j := 0; j < 2; j++ {
			expected := rowTotals[i] * colTotals[j] / grand
			if expected == 0 {
				continue
			}
			diff := cell[j] - expected
			chiSq += diff * diff / expected
		}
	}

	dof := len(levels) - 1 // (rows-1) * (cols-1) with two survival columns
	chiDist := distuv.ChiSquared{K: float64(dof)}
	pValue := 1 - chiDist.CDF(chiSq)

	return IndependenceResult{
		Factor:     factor,
		Levels:     len(levels),
		ChiSquare:  chiSq,
		DOF:        dof,
		PValue:     pValue,
		SampleSize: total,
	}, nil
}
