package displayinfo

import (
	"errors"
)

// DisplayID is the platform-assigned identifier of one active display
// (a CGDirectDisplayID).
type DisplayID uint32

var ErrNoActiveDisplays = errors.New("no active displays found")
