//go:build !linux && !darwin && !freebsd

package source

import (
	"errors"
	"os"
)

var errMmapUnsupported = errors.New("mmap not supported")

func mapFile(*os.File) ([]byte, func() error, error) {
	return nil, nil, errMmapUnsupported
}
