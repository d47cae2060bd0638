//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

const (
	mbOK              = 0x00000000
	mbIconExclamation = 0x00000030
)

// notify shows a modal message box. Errors converting the strings are
// swallowed; a notice that cannot render has nowhere left to go.
func notify(title, message string) {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	m, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	windows.MessageBox(0, m, t, mbOK|mbIconExclamation)
}
