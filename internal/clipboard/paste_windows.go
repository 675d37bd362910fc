//go:build windows

package clipboard

import "github.com/micmonay/keybd_event"

// sendPaste simulates the standard Ctrl+V paste chord.
func sendPaste() error {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return err
	}
	kb.HasCTRL(true)
	kb.SetKeys(keybd_event.VK_V)
	return kb.Launching()
}
