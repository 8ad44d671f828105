package domain

// Driver available for the planning period.
// ID is unique within a roster; Class is the license the driver holds.
type Driver struct {
	ID    string
	Start TimeOfDay
	Class LicenseClass
}
