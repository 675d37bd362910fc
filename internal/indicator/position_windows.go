//go:build windows

package indicator

import (
	"syscall"
	"time"
	"unsafe"
)

var (
	user32               = syscall.NewLazyDLL("user32.dll")
	procFindWindowW      = user32.NewProc("FindWindowW")
	procSetWindowPos     = user32.NewProc("SetWindowPos")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
)

const (
	smCXScreen = 0
	smCYScreen = 1

	hwndTopmost   = ^uintptr(0) // (HWND)-1
	swpNoSize     = 0x0001
	swpShowWindow = 0x0040
)

// positionWindow centers the popup horizontally at 85% screen height
// and pins it above all other windows.
func positionWindow(title string, width, height int) {
	// Give the window time to appear.
	time.Sleep(100 * time.Millisecond)

	titlePtr, err := syscall.UTF16PtrFromString(title)
	if err != nil {
		return
	}

	var hwnd uintptr
	for i := 0; i < 10; i++ {
		hwnd, _, _ = procFindWindowW.Call(0, uintptr(unsafe.Pointer(titlePtr)))
		if hwnd != 0 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if hwnd == 0 {
		return
	}

	screenW, _, _ := procGetSystemMetrics.Call(smCXScreen)
	screenH, _, _ := procGetSystemMetrics.Call(smCYScreen)
	if screenW == 0 || screenH == 0 {
		return
	}

	x := (int(screenW) - width) / 2
	y := int(float64(screenH) * 0.85)

	procSetWindowPos.Call(
		hwnd,
		hwndTopmost,
		uintptr(x),
		uintptr(y),
		0,
		0,
		swpNoSize|swpShowWindow,
	)
}
