//go:build !darwin

package brightness

import "errors"

func newDisplayServicesBackend(paths []string) (Backend, error) {
	return nil, errors.New("brightness control is only available on macOS")
}
