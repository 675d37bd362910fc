//go:build windows

// Package autostart manages the launch-at-login registry entry.
package autostart

import (
	"os"

	"golang.org/x/sys/windows/registry"
)

const (
	runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`
	valueName  = "GhostWriter"
)

// Set adds or removes the HKCU Run entry for the current executable.
func Set(enabled bool) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer key.Close()

	if !enabled {
		if err := key.DeleteValue(valueName); err != nil && err != registry.ErrNotExist {
			return err
		}
		return nil
	}

	execPath, err := os.Executable()
	if err != nil {
		return err
	}
	return key.SetStringValue(valueName, `"`+execPath+`"`)
}
