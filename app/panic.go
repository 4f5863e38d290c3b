package app

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// recoverPanic turns a panic inside a frame into a fatal error. The panic
// value and stack go to the logger line by line, and the framebuffer is
// blanked white so a frozen window is recognisable.
func (a *App) recoverPanic(err *error) {
	v := recover()
	if v == nil {
		return
	}

	a.log.WriteLineString(fmt.Sprintf("fbdemo panic: %v", v))
	for _, line := range strings.Split(string(debug.Stack()), "\n") {
		if line == "" {
			continue
		}
		a.log.WriteLineString(line)
	}

	if a.fb != nil {
		a.fb.Clear(panicColor.Pack())
		_ = a.fb.Present()
	}

	if e, ok := v.(error); ok {
		*err = fmt.Errorf("app: panic: %w", e)
		return
	}
	*err = fmt.Errorf("app: panic: %v", v)
}
