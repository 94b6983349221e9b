//go:build darwin

package displayinfo

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

const coreGraphicsPath = "/System/Library/Frameworks/CoreGraphics.framework/CoreGraphics"

var (
	cgOnce sync.Once
	cgErr  error

	cgGetActiveDisplayList func(maxDisplays uint32, activeDisplays unsafe.Pointer, displayCount unsafe.Pointer) int32
)

func loadCoreGraphics() error {
	cgOnce.Do(func() {
		handle, err := purego.Dlopen(coreGraphicsPath, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			cgErr = fmt.Errorf("failed to load CoreGraphics: %w", err)
			return
		}

		sym, err := purego.Dlsym(handle, "CGGetActiveDisplayList")
		if err != nil {
			cgErr = fmt.Errorf("failed to resolve CGGetActiveDisplayList: %w", err)
			return
		}
		purego.RegisterFunc(&cgGetActiveDisplayList, sym)
	})
	return cgErr
}

// ActiveDisplays returns the identifiers of the currently active displays,
// filling at most max entries. The bound keeps the buffer handed to the
// platform call fixed-size regardless of how many displays are attached.
func ActiveDisplays(max int) ([]DisplayID, error) {
	if max <= 0 {
		max = 1
	}

	if err := loadCoreGraphics(); err != nil {
		return nil, err
	}

	buf := make([]uint32, max)
	var count uint32

	status := cgGetActiveDisplayList(uint32(max), unsafe.Pointer(&buf[0]), unsafe.Pointer(&count))
	if status != 0 {
		return nil, fmt.Errorf("failed to get active displays: status %d", status)
	}
	if count == 0 {
		return nil, ErrNoActiveDisplays
	}

	ids := make([]DisplayID, count)
	for i, id := range buf[:count] {
		ids[i] = DisplayID(id)
	}
	return ids, nil
}
