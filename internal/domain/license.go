package domain

import (
	"fmt"
	"strings"
)

// LicenseClass is the driving-license tier held by a driver or required by a route.
type LicenseClass int

const (
	LicenseUnknown LicenseClass = iota
	LicenseClass1
	LicenseClass2
)

func (c LicenseClass) String() string {
	switch c {
	case LicenseClass1:
		return "class 1"
	case LicenseClass2:
		return "class 2"
	default:
		return "unknown"
	}
}

// ParseLicenseClass accepts "class 1", "Class 2", "1" and similar spellings.
func ParseLicenseClass(s string) (LicenseClass, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimSpace(strings.TrimPrefix(v, "class"))

	switch v {
	case "1":
		return LicenseClass1, nil
	case "2":
		return LicenseClass2, nil
	default:
		return LicenseUnknown, fmt.Errorf("parse license class: unknown class %q", s)
	}
}

// compatibility[driver][route] reports whether a driver holding the first class
// may operate a route requiring the second. Missing entries are illegal.
var compatibility = map[LicenseClass]map[LicenseClass]bool{
	LicenseClass1: {LicenseClass1: true, LicenseClass2: true},
	LicenseClass2: {LicenseClass1: false, LicenseClass2: true},
}

// CanOperate reports whether a driver with class driver may be assigned a route requiring class route.
func CanOperate(driver, route LicenseClass) bool {
	return compatibility[driver][route]
}
