//go:build !darwin

package displayinfo

import "errors"

func ActiveDisplays(max int) ([]DisplayID, error) {
	return nil, errors.New("display enumeration is only available on macOS")
}
