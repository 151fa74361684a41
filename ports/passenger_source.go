package ports

import (
	"voyage/domain/passenger"
)

// PassengerSource loads the passenger manifest from wherever it lives.
// Implementations must be stateless: repeated reads of the same resource
// yield identical records.
type PassengerSource interface {
	// Read loads all passenger records.
	Read() ([]passenger.Passenger, error)

	// Locator identifies the underlying resource, for logs and snapshots.
	Locator() string
}
