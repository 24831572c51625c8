//go:build !darwin

package platform

// ActivateApp is a no-op on non-macOS platforms
func ActivateApp() {}
