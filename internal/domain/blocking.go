package domain

import "time"

// Blocking is a host-declared unavailability window on a property.
// There is no cancel flag: existence is the active state.
type Blocking struct {
	ID         int64
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	PropertyID int64
	Property   *Property
}
