//go:build windows

package platform

import (
	"context"
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	registerClassEx  = user32.NewProc("RegisterClassExW")
	unregisterClass  = user32.NewProc("UnregisterClassW")
	createWindowEx   = user32.NewProc("CreateWindowExW")
	destroyWindow    = user32.NewProc("DestroyWindow")
	defWindowProc    = user32.NewProc("DefWindowProcW")
	postQuitMessage  = user32.NewProc("PostQuitMessage")
	peekMessage      = user32.NewProc("PeekMessageW")
	dispatchMessage  = user32.NewProc("DispatchMessageW")
	registerHotKey   = user32.NewProc("RegisterHotKey")
	unregisterHotKey = user32.NewProc("UnregisterHotKey")
)

const (
	wmDestroy = 0x0002
	wmClose   = 0x0010
	wmQuit    = 0x0012
	wmHotkey  = 0x0312
	pmRemove  = 0x0001

	modAlt     = 0x0001
	modControl = 0x0002
	modShift   = 0x0004
	modWin     = 0x0008

	// The one hotkey this process ever registers.
	hotkeyID = 1
)

type wndclassex struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     windows.Handle
	hIcon         uintptr
	hCursor       uintptr
	hbrBackground uintptr
	lpszMenuName  *uint16
	lpszClassName *uint16
}

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// wndproc is stateless: closing or destroying the hidden window posts
// WM_QUIT, which the pump loop turns into a Shutdown event. No shared flag.
func wndproc(hwnd uintptr, message uint32, wParam, lParam uintptr) uintptr {
	switch message {
	case wmClose, wmDestroy:
		postQuitMessage.Call(0)
		return 0
	}
	r, _, _ := defWindowProc.Call(hwnd, uintptr(message), wParam, lParam)
	return r
}

var wndprocCallback = windows.NewCallback(wndproc)

// WindowsHotkey implements the Hotkey interface with a hidden window,
// RegisterHotKey and a cooperative PeekMessage poll.
type WindowsHotkey struct{}

// NewHotkey creates a new Windows hotkey listener
func NewHotkey() Hotkey {
	return &WindowsHotkey{}
}

// Listen registers the combo and starts the message pump. The returned
// channel delivers one Activation per hotkey press and a final Shutdown when
// the window is closed or the platform posts a quit message.
func (h *WindowsHotkey) Listen(ctx context.Context, combo KeyCombo, pollInterval time.Duration) (<-chan Event, error) {
	events := make(chan Event, 10)
	errCh := make(chan error, 1)

	go h.runPump(ctx, combo, pollInterval, events, errCh)

	// Wait for window + hotkey registration to succeed or fail.
	select {
	case err := <-errCh:
		if err != nil {
			return nil, err
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return events, nil
}

func (h *WindowsHotkey) runPump(ctx context.Context, combo KeyCombo, pollInterval time.Duration, events chan<- Event, errCh chan<- error) {
	// The window, its class and the hotkey all belong to this OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var instance windows.Handle
	if err := windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, nil, &instance); err != nil {
		errCh <- fmt.Errorf("GetModuleHandle failed: %w", err)
		return
	}

	className, err := windows.UTF16PtrFromString("TypeLineHotkeyWindow")
	if err != nil {
		errCh <- err
		return
	}

	wc := wndclassex{
		lpfnWndProc:   wndprocCallback,
		hInstance:     instance,
		lpszClassName: className,
	}
	wc.cbSize = uint32(unsafe.Sizeof(wc))

	atom, _, callErr := registerClassEx.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		errCh <- fmt.Errorf("RegisterClassEx failed: %w", callErr)
		return
	}
	defer unregisterClass.Call(uintptr(unsafe.Pointer(className)), uintptr(instance))

	// Hidden window: it exists only to own the hotkey registration and
	// receive its messages.
	hwnd, _, callErr := createWindowEx.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(className)),
		0,
		0, 0, 0, 0,
		0, 0,
		uintptr(instance),
		0,
	)
	if hwnd == 0 {
		errCh <- fmt.Errorf("CreateWindowEx failed: %w", callErr)
		return
	}
	defer destroyWindow.Call(hwnd)

	var mods uintptr
	if combo.Alt {
		mods |= modAlt
	}
	if combo.Ctrl {
		mods |= modControl
	}
	if combo.Shift {
		mods |= modShift
	}
	if combo.Win {
		mods |= modWin
	}

	r, _, callErr := registerHotKey.Call(hwnd, hotkeyID, mods, uintptr(combo.Key))
	if r == 0 {
		// Usually another process already owns the combination.
		errCh <- fmt.Errorf("RegisterHotKey failed: %w", callErr)
		return
	}
	defer unregisterHotKey.Call(hwnd, hotkeyID)

	errCh <- nil

	// Cooperative low-frequency poll: drain everything that queued up,
	// sleep, repeat. A press during the sleep just waits in the queue.
	var m msg
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		for {
			got, _, _ := peekMessage.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
			if got == 0 {
				break
			}

			switch m.message {
			case wmQuit:
				h.deliver(ctx, events, Event{Type: Shutdown})
				return
			case wmHotkey:
				if m.wParam == hotkeyID {
					h.deliver(ctx, events, Event{Type: Activation})
				}
			default:
				dispatchMessage.Call(uintptr(unsafe.Pointer(&m)))
			}
		}

		time.Sleep(pollInterval)
	}
}

// deliver blocks until the agent accepts the event, mirroring the original
// single-threaded model: while an activation is being processed, further
// presses stay queued at the platform level.
func (h *WindowsHotkey) deliver(ctx context.Context, events chan<- Event, e Event) {
	select {
	case events <- e:
	case <-ctx.Done():
	}
}
