package domain

// Route to be covered during the planning period.
// Class is the license a driver needs to operate it.
type Route struct {
	ID    string
	Start TimeOfDay
	Class LicenseClass
}
