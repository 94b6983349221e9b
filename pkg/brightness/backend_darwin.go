//go:build darwin

package brightness

import (
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/hoppxi/maco/pkg/displayinfo"
)

// dlLoader is the real loader backed by the system dynamic linker.
type dlLoader struct{}

func (dlLoader) open(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_LAZY)
}

func (dlLoader) lookup(scope uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(scope, symbol)
}

func (dlLoader) release(handle uintptr) error {
	return purego.Dlclose(handle)
}

func (dlLoader) defaultScope() uintptr {
	return purego.RTLD_DEFAULT
}

// displayServicesBackend invokes the resolved entry points as typed
// functions. DisplayServicesGetBrightness writes into a float out-parameter;
// DisplayServicesSetBrightness takes the value directly. Both report status
// as a non-zero return.
type displayServicesBackend struct {
	guard handleGuard
	get   func(display uint32, brightness unsafe.Pointer) int32
	set   func(display uint32, brightness float32) int32
}

func newDisplayServicesBackend(paths []string) (Backend, error) {
	ld := dlLoader{}
	syms, err := resolveSymbols(ld, paths, getterSymbol, setterSymbol)
	if err != nil {
		return nil, err
	}

	b := &displayServicesBackend{guard: handleGuard{ld: ld, handle: syms.handle}}
	purego.RegisterFunc(&b.get, syms.getter)
	purego.RegisterFunc(&b.set, syms.setter)
	return b, nil
}

func (b *displayServicesBackend) Get(display displayinfo.DisplayID) (float32, error) {
	var value float32
	if status := b.get(uint32(display), unsafe.Pointer(&value)); status != 0 {
		return 0, &PlatformError{Code: status}
	}
	return value, nil
}

func (b *displayServicesBackend) Set(display displayinfo.DisplayID, value float32) error {
	if status := b.set(uint32(display), value); status != 0 {
		return &PlatformError{Code: status}
	}
	return nil
}

func (b *displayServicesBackend) Close() error {
	return b.guard.release()
}
