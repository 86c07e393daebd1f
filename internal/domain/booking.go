package domain

import "time"

// Booking is a guest reservation over a time range on a property.
// A canceled booking stays stored but is invisible to collision checks.
type Booking struct {
	ID          int64
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	IsCanceled  bool
	PropertyID  int64
	Property    *Property
}
