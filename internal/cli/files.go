package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/arloliu/ringitem/source"
)

// eachSource opens every path in turn and hands the decoded buffer to fn.
// The source is closed before the next file is opened, so fn must not keep
// views of its bytes. With --keep-going a failing file is logged and
// skipped; otherwise the first failure stops the walk.
func eachSource(paths []string, fn func(src *source.Source) error) error {
	failed := 0
	for _, path := range paths {
		err := withSource(path, fn)
		if err == nil {
			continue
		}
		if !keepGoing {
			return err
		}

		failed++
		logger.WithError(err).WithField("file", path).Error("skipping file")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}

	return nil
}

func withSource(path string, fn func(src *source.Source) error) error {
	src, err := source.Open(path, source.WithMmap(!noMmap))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			logger.WithError(cerr).WithField("file", path).Warn("close failed")
		}
	}()

	logger.WithFields(logrus.Fields{
		"file":        path,
		"size":        humanize.IBytes(uint64(src.Len())),
		"compression": src.Compression().String(),
		"mapped":      src.Mapped(),
	}).Debug("opened event file")

	if err := fn(src); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
