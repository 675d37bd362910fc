//go:build !windows

// Package autostart manages the launch-at-login registry entry.
package autostart

// Set is a no-op where there is no Windows registry.
func Set(enabled bool) error {
	return nil
}
