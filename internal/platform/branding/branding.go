// Package branding centralizes product naming constants.
package branding

// AppName is the public product name used in page titles and chrome.
const AppName = "ModeGarage"

// AdminName labels the embedded admin surface.
const AdminName = "MG Admin"
