//go:build windows

package ewindows

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var kernel32 = windows.NewLazySystemDLL("kernel32.dll")

// https://docs.microsoft.com/en-us/windows/console/readconsoleinput
//
// BOOL WINAPI ReadConsoleInput(
//
//		_In_  HANDLE        hConsoleInput,
//		_Out_ PINPUT_RECORD lpBuffer,
//		_In_  DWORD         nLength,
//		_Out_ LPDWORD       lpNumberOfEventsRead
//	  );
var readConsoleInput = kernel32.NewProc("ReadConsoleInputW")

// ReadConsoleInput input wraps the homonymous Windows API call. It blocks
// until at least one record is available.
func ReadConsoleInput(h windows.Handle, buf []InputRecord) (int, error) {
	var nr uint32
	r, _, err := readConsoleInput.Call(uintptr(h),
		uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), uintptr(unsafe.Pointer(&nr)))
	if r != 0 {
		err = nil
	}
	return int(nr), err
}

// https://docs.microsoft.com/en-us/windows/console/getconsolecursorinfo
//
// BOOL WINAPI GetConsoleCursorInfo(
//
//	_In_  HANDLE               hConsoleOutput,
//	_Out_ PCONSOLE_CURSOR_INFO lpConsoleCursorInfo
//
// );
var getConsoleCursorInfo = kernel32.NewProc("GetConsoleCursorInfo")

// GetConsoleCursorInfo wraps the homonymous Windows API call.
func GetConsoleCursorInfo(h windows.Handle, info *ConsoleCursorInfo) error {
	r, _, err := getConsoleCursorInfo.Call(uintptr(h), uintptr(unsafe.Pointer(info)))
	if r != 0 {
		return nil
	}
	return err
}

// https://docs.microsoft.com/en-us/windows/console/setconsolecursorinfo
var setConsoleCursorInfo = kernel32.NewProc("SetConsoleCursorInfo")

// SetConsoleCursorInfo wraps the homonymous Windows API call.
func SetConsoleCursorInfo(h windows.Handle, info *ConsoleCursorInfo) error {
	r, _, err := setConsoleCursorInfo.Call(uintptr(h), uintptr(unsafe.Pointer(info)))
	if r != 0 {
		return nil
	}
	return err
}
