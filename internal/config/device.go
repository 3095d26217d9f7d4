package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// DeviceAuto selects the device class from the terminal width.
const DeviceAuto = "auto"

// ParseDeviceClass parses a configured device class name.
// "auto" (or empty) returns ok=false so the caller can detect instead.
func ParseDeviceClass(name string) (class core.DeviceClass, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DeviceAuto:
		return core.DevicePointer, false, nil
	case "pointer", "mouse":
		return core.DevicePointer, true, nil
	case "touch":
		return core.DeviceTouch, true, nil
	default:
		return core.DevicePointer, false, fmt.Errorf("config: unknown device class %q", name)
	}
}

// DetectDeviceClass guesses the device class from the terminal width,
// the way a max-width media query would on a web page.
func DetectDeviceClass(screenW, touchMaxWidth int) core.DeviceClass {
	if touchMaxWidth > 0 && screenW <= touchMaxWidth {
		return core.DeviceTouch
	}
	return core.DevicePointer
}

// ResolveDevice returns the configured class, or a detected one for "auto".
func (c DeviceConfig) ResolveDevice(screenW int) core.DeviceClass {
	class, ok, err := ParseDeviceClass(c.Class)
	if err != nil || !ok {
		return DetectDeviceClass(screenW, c.TouchMaxWidth)
	}
	return class
}
