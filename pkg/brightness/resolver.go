package brightness

// loader abstracts the dynamic loader so the candidate-path policy can be
// exercised without dlopen.
type loader interface {
	open(path string) (uintptr, error)
	lookup(scope uintptr, symbol string) (uintptr, error)
	release(handle uintptr) error
	defaultScope() uintptr
}

// symbols holds the addresses of the brightness entry points. handle is zero
// when the symbols were found in the process's default scope and there is
// nothing to release.
type symbols struct {
	handle uintptr
	getter uintptr
	setter uintptr
}

// resolveSymbols tries each candidate path in order and binds both symbols
// from the first library that loads. When no candidate loads, the lookup
// falls back to the default scope: these frameworks are often already mapped
// into the process even when their on-disk location has moved between macOS
// releases. The fallback is best-effort, not a documented contract.
//
// Either both symbols resolve or the whole operation fails, releasing any
// handle that was opened.
func resolveSymbols(ld loader, paths []string, getterName, setterName string) (*symbols, error) {
	var handle uintptr
	for _, path := range paths {
		h, err := ld.open(path)
		if err == nil && h != 0 {
			handle = h
			break
		}
	}

	scope := handle
	if scope == 0 {
		scope = ld.defaultScope()
	}

	getter, gerr := ld.lookup(scope, getterName)
	setter, serr := ld.lookup(scope, setterName)
	if gerr != nil || serr != nil || getter == 0 || setter == 0 {
		if handle != 0 {
			_ = ld.release(handle)
		}
		return nil, ErrSymbolsUnavailable
	}

	return &symbols{handle: handle, getter: getter, setter: setter}, nil
}

// handleGuard owns a resolved library handle and releases it through the
// loader that opened it, at most once. A zero handle means the symbols came
// from the default scope and there is nothing to release.
type handleGuard struct {
	ld       loader
	handle   uintptr
	released bool
}

func (g *handleGuard) release() error {
	if g.released {
		return nil
	}
	g.released = true

	if g.handle != 0 {
		return g.ld.release(g.handle)
	}
	return nil
}
