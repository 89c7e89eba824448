// Package icons defines the icon identifiers recognized by the service
// catalog.
//
// Stored content references icons by stable identifier; rendering resolves
// the identifier to a Lucide symbol name. Unrecognized identifiers always
// resolve to the default icon; rendering a service entry must never fail on
// a bad icon name.
package icons

import "strings"

// DefaultID is the icon used when a stored identifier is not recognized.
const DefaultID = "Settings"

// lucideIconNames maps catalog identifiers to Lucide symbol names.
var lucideIconNames = map[string]string{
	"Fuel":     "fuel",
	"Wrench":   "wrench",
	"Shield":   "shield",
	"Zap":      "zap",
	"Palette":  "palette",
	"Camera":   "camera",
	"Settings": "settings",
}

// Normalize resolves an arbitrary stored identifier to a catalog entry,
// falling back to DefaultID for unknown values.
func Normalize(identifier string) string {
	trimmed := strings.TrimSpace(identifier)
	if _, ok := lucideIconNames[trimmed]; ok {
		return trimmed
	}
	return DefaultID
}

// LucideNameOrDefault provides a stable Lucide name even when the stored
// identifier is unknown.
func LucideNameOrDefault(identifier string) string {
	if name, ok := lucideIconNames[strings.TrimSpace(identifier)]; ok {
		return name
	}
	return lucideIconNames[DefaultID]
}
