//go:build windows

package platform

import (
	"fmt"
	"unsafe"
)

var (
	sendInput      = user32.NewProc("SendInput")
	vkKeyScanW     = user32.NewProc("VkKeyScanW")
	mapVirtualKeyW = user32.NewProc("MapVirtualKeyW")
)

const (
	inputKeyboard  = 1
	keyeventfKeyup = 0x0002
	mapvkVkToVsc   = 0
)

type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type input struct {
	inputType uint32
	ki        keyboardInput
	padding   [8]byte // Padding to match C struct size
}

// WindowsTyper implements the Typer interface via SendInput
type WindowsTyper struct{}

// NewTyper creates a new Windows keystroke injector
func NewTyper() Typer {
	return &WindowsTyper{}
}

// Type sends each byte of text as a key-down/key-up pair to whatever window
// currently holds focus. Bytes the active keyboard layout cannot map to a
// virtual key are skipped; there is no atomicity across the stream, the
// target sees a burst of individual keystrokes.
func (t *WindowsTyper) Type(text string) error {
	for i := 0; i < len(text); i++ {
		scanResult, _, _ := vkKeyScanW.Call(uintptr(text[i]))
		if int16(scanResult) == -1 {
			continue
		}

		// Low byte is the virtual key; the shift-state high byte is
		// ignored, single-byte mapping only.
		vk := uint16(scanResult & 0xff)
		scan, _, _ := mapVirtualKeyW.Call(uintptr(vk), mapvkVkToVsc)

		inputs := []input{
			{
				inputType: inputKeyboard,
				ki: keyboardInput{
					wVk:   vk,
					wScan: uint16(scan),
				},
			},
			{
				inputType: inputKeyboard,
				ki: keyboardInput{
					wVk:     vk,
					wScan:   uint16(scan),
					dwFlags: keyeventfKeyup,
				},
			},
		}

		ret, _, err := sendInput.Call(
			uintptr(len(inputs)),
			uintptr(unsafe.Pointer(&inputs[0])),
			unsafe.Sizeof(inputs[0]),
		)
		if ret == 0 {
			return fmt.Errorf("SendInput failed: %w", err)
		}
	}

	return nil
}
