package model

import (
	"slices"
	"strings"
)

// DefaultVehicleTypes are the tags every workshop starts with. Custom tags are
// persisted alongside the state blob, upper-cased and de-duplicated.
var DefaultVehicleTypes = []string{
	"BIL",
	"CYKEL",
	"FYRHJULIING",
	"GRÄVMASKIN",
	"TRAKTOR",
}

// NormalizeVehicleType folds a user-entered tag into the stored form.
func NormalizeVehicleType(vehicleType string) string {
	return strings.ToUpper(strings.TrimSpace(vehicleType))
}

// IsDefaultVehicleType reports whether the (already normalized) tag is one of
// the built-in defaults, which cannot be removed.
func IsDefaultVehicleType(vehicleType string) bool {
	return slices.Contains(DefaultVehicleTypes, vehicleType)
}
