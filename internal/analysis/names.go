package analysis

import (
	"sort"

	"voyage/domain/passenger"
)

// NameCount is one surname with its occurrence count.
type NameCount struct {
	Surname string `json:"surname"`
	Count   int    `json:"count"`
}

// LastNames counts passengers per surname and returns the frequency table
// ordered by count descending, ties broken by surname ascending. A topK of
// 0 or less returns the full table.
func LastNames(passengers []passenger.Passenger, topK int) []NameCount {
	counts := make(map[string]int)
	for _, p := range passengers {
		counts[p.Surname()]++
	}

	rows := make([]NameCount, 0, len(counts))
	for surname, count := range counts {
		rows = append(rows, NameCount{Surname: surname, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Surname < rows[j].Surname
	})

	if topK > 0 && len(rows) > topK {
		rows = rows[:topK]
	}
	return rows
}
