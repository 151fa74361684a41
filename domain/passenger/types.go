package passenger

import (
	"strings"
)

// Passenger is one row of the Titanic manifest after loading. Age and Fare
// are nil when the source cell was blank; they are never coerced to zero.
type Passenger struct {
	ID       int      `json:"id"`
	Class    int      `json:"class"` // ordinal: 1, 2, 3
	Sex      string   `json:"sex"`   // normalized lowercase, trimmed at load
	Age      *float64 `json:"age,omitempty"`
	Survived bool     `json:"survived"`
	SibSp    int      `json:"sibsp"`
	Parch    int      `json:"parch"`
	Fare     *float64 `json:"fare,omitempty"`
	Name     string   `json:"name"` // "Surname, Given..."
}

// AgeGroup is the fixed four-way age bucket. The ordering Child < Teen <
// Adult < Senior is load-bearing: aggregators sort by it.
type AgeGroup int

const (
	AgeGroupNone AgeGroup = iota // age missing or outside [0, 200]
	Child
	Teen
	Adult
	Senior
)

// Bucket boundaries, shared by every aggregator. Child covers [0, 12],
// Teen (12, 19], Adult (19, 59], Senior (59, 200].
const (
	childMaxAge  = 12
	teenMaxAge   = 19
	adultMaxAge  = 59
	seniorMaxAge = 200
)

var ageGroupNames = map[AgeGroup]string{
	AgeGroupNone: "",
	Child:        "Child",
	Teen:         "Teen",
	Adult:        "Adult",
	Senior:       "Senior",
}

func (g AgeGroup) String() string {
	return ageGroupNames[g]
}

// AgeGroupFor buckets an age into the fixed boundaries. ok is false when the
// age falls outside every bucket.
func AgeGroupFor(age float64) (group AgeGroup, ok bool) {
	switch {
	case age < 0:
		return AgeGroupNone, false
	case age <= childMaxAge:
		return Child, true
	case age <= teenMaxAge:
		return Teen, true
	case age <= adultMaxAge:
		return Adult, true
	case age <= seniorMaxAge:
		return Senior, true
	default:
		return AgeGroupNone, false
	}
}

// AgeGroup returns the passenger's bucket; ok is false when age is missing
// or out of range.
func (p Passenger) AgeGroup() (AgeGroup, bool) {
	if p.Age == nil {
		return AgeGroupNone, false
	}
	return AgeGroupFor(*p.Age)
}

// FamilySize counts the passenger's travel group including themselves.
// Always >= 1.
func (p Passenger) FamilySize() int {
	return p.SibSp + p.Parch + 1
}

// Surname extracts the text before the first comma of the name, trimmed.
// A name with no comma yields the whole trimmed name.
func (p Passenger) Surname() string {
	return SurnameOf(p.Name)
}

// SurnameOf parses a "Surname, Given..." name into its surname.
func SurnameOf(name string) string {
	if i := strings.IndexByte(name, ','); i >= 0 {
		return strings.TrimSpace(name[:i])
	}
	return strings.TrimSpace(name)
}

// NormalizeSex lowercases and trims a raw sex value.
func NormalizeSex(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
