package domain

// Property is a bookable unit. Bookings and blockings reference it by id;
// all fields other than the id are display-only.
type Property struct {
	ID   int64
	Name string
}
