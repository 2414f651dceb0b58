//go:build linux || darwin || freebsd

package source

import (
	"errors"
	"os"

	"github.com/tysontate/gommap"
)

var errMmapUnsupported = errors.New("mmap not supported")

// mapFile maps f read-only for a single forward pass.
// An empty file yields an empty buffer and no mapping.
func mapFile(f *os.File) ([]byte, func() error, error) {
	st, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if st.Size() == 0 {
		return []byte{}, nil, nil
	}

	m, err := gommap.Map(f.Fd(), gommap.PROT_READ, gommap.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	_ = m.Advise(gommap.MADV_SEQUENTIAL)

	return m, m.UnsafeUnmap, nil
}
