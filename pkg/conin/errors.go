package conin

import "errors"

// ErrPlatformQueryFailed matches every *PlatformError with errors.Is.
var ErrPlatformQueryFailed = errors.New("console platform call failed")

// PlatformError is returned when a call into the console API fails.
type PlatformError struct {
	// Name of the Windows API call.
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PlatformError) Unwrap() error { return e.Err }

// Is reports whether target is ErrPlatformQueryFailed.
func (e *PlatformError) Is(target error) bool {
	return target == ErrPlatformQueryFailed
}

func platformError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PlatformError{op, err}
}
