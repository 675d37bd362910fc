//go:build !windows

package indicator

// positionWindow is a stub off Windows; the popup keeps the window
// manager's default placement there.
func positionWindow(title string, width, height int) {}
