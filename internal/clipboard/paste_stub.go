//go:build !windows

package clipboard

import "errors"

func sendPaste() error {
	return errors.New("paste keystroke is only supported on windows")
}
