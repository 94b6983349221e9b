// Package brightness reads and writes hardware display brightness through
// the private DisplayServices interface, resolved from the system libraries
// at runtime.
package brightness

import (
	"errors"
	"fmt"

	"github.com/hoppxi/maco/pkg/displayinfo"
)

const (
	getterSymbol = "DisplayServicesGetBrightness"
	setterSymbol = "DisplayServicesSetBrightness"

	maxDisplays = 16
)

// DefaultFrameworkPaths are the candidate libraries tried, in order, when
// loading the brightness symbols. macOS releases have moved them between
// DisplayServices and SkyLight.
var DefaultFrameworkPaths = []string{
	"/System/Library/PrivateFrameworks/DisplayServices.framework/DisplayServices",
	"/System/Library/PrivateFrameworks/SkyLight.framework/SkyLight",
}

var (
	ErrOutOfRange         = errors.New("brightness must be between 0.0 and 1.0")
	ErrSymbolsUnavailable = errors.New("DisplayServices functions not available on this system")
)

// PlatformError is a non-zero status code returned by a DisplayServices call.
type PlatformError struct {
	Code int32
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform returned error code %d", e.Code)
}

// Backend reads and writes the brightness of one display. The real
// implementation invokes the resolved DisplayServices entry points; tests use
// an in-memory one.
type Backend interface {
	Get(display displayinfo.DisplayID) (float32, error)
	Set(display displayinfo.DisplayID, value float32) error
	Close() error
}

// Controller is bound to one active display and one resolved backend. It is
// built once, used for a get or set, and closed.
type Controller struct {
	display displayinfo.DisplayID
	backend Backend
}

// NewController enumerates the active displays, resolves the brightness
// symbols and binds the first display. paths overrides the candidate library
// list; nil means DefaultFrameworkPaths.
func NewController(paths []string) (*Controller, error) {
	if len(paths) == 0 {
		paths = DefaultFrameworkPaths
	}
	return newController(displayinfo.ActiveDisplays, func() (Backend, error) {
		return newDisplayServicesBackend(paths)
	})
}

func newController(displays func(int) ([]displayinfo.DisplayID, error), open func() (Backend, error)) (*Controller, error) {
	ids, err := displays(maxDisplays)
	if err != nil {
		return nil, err
	}

	backend, err := open()
	if err != nil {
		return nil, err
	}

	return &Controller{display: ids[0], backend: backend}, nil
}

// Display returns the identifier the controller is bound to.
func (c *Controller) Display() displayinfo.DisplayID { return c.display }

// Get reads the current brightness. The platform reports a value nominally
// within [0.0, 1.0]; it is passed through untouched.
func (c *Controller) Get() (float32, error) {
	return c.backend.Get(c.display)
}

// Set writes the brightness. value must be within [0.0, 1.0]; the range is
// checked before anything crosses the foreign boundary. The negated form
// keeps NaN from slipping past the gate.
func (c *Controller) Set(value float32) error {
	if !(value >= 0.0 && value <= 1.0) {
		return ErrOutOfRange
	}
	return c.backend.Set(c.display, value)
}

// Close releases the loaded library handle, if one is owned.
func (c *Controller) Close() error {
	return c.backend.Close()
}
