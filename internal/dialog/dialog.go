// Package dialog provides native message boxes.
package dialog

import (
	"github.com/ncruces/zenity"
)

// ShowError shows an error message.
func ShowError(title, message string) {
	zenity.Error(message, zenity.Title(title))
}
