package domain

// Raw roster row as read from a workbook or database, before any parsing.
// The driver half and the route half are independent lists that merely share a row.
type RosterRecord struct {
	Row         int
	DriverStart string
	DriverID    string
	DriverClass string
	RouteStart  string
	RouteID     string
	RouteClass  string
}

// Roster holds the drivers and routes that survived validation, in input order.
type Roster struct {
	Drivers []Driver
	Routes  []Route
}
