package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arloliu/ringitem/compress"
	"github.com/arloliu/ringitem/format"
	"github.com/arloliu/ringitem/source"
)

var packCodec string

// packInMemoryLimit is the largest input compressed and verified in memory;
// larger inputs are streamed.
var packInMemoryLimit = 64 << 20

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.Flags().StringVarP(&packCodec, "codec", "c", "zstd", "Compression codec (zstd|s2|lz4)")
}

var packCmd = &cobra.Command{
	Use:   "pack IN OUT",
	Short: "Compress an event file for archiving",
	Long: "Checks that IN frames cleanly and writes it to OUT with the chosen codec.\n" +
		"IN may itself be compressed. Events are copied byte for byte.",
	Args: cobra.ExactArgs(2),
	RunE: runPack,
}

func runPack(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	ct, ok := format.ParseCompressionType(packCodec)
	if !ok || ct == format.CompressionNone {
		return fmt.Errorf("unsupported codec %q (want zstd, s2 or lz4)", packCodec)
	}
	codec, err := compress.CreateCodec(ct, "pack output")
	if err != nil {
		return err
	}

	if ext := compress.Extension(ct); !strings.EqualFold(filepath.Ext(out), ext) {
		logger.WithField("file", out).Warnf("output extension does not match %s; readers will not detect the codec", ext)
	}

	if err := checkDistinct(in, out); err != nil {
		return err
	}

	return withSource(in, func(src *source.Source) error {
		cur := src.Cursor()
		events := 0
		for cur.Next() {
			events++
		}
		if err := cur.Err(); err != nil {
			return err
		}

		return writePacked(out, codec, src.Bytes(), events)
	})
}

// checkDistinct rejects an OUT that is the same file as IN. Truncating it
// would pull the bytes out from under the mapping of IN.
func checkDistinct(in, out string) error {
	inInfo, err := os.Stat(in)
	if err != nil {
		return err
	}
	outInfo, err := os.Stat(out)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("output %s is the input file", out)
	}

	return nil
}

// packData writes data to f compressed with codec. Inputs up to
// packInMemoryLimit are compressed in one call and decompressed again before
// anything is written.
func packData(codec compress.Codec, f *os.File, data []byte) (compress.CompressionStats, error) {
	if len(data) == 0 || len(data) > packInMemoryLimit {
		return compress.Copy(codec, f, bytes.NewReader(data))
	}

	stats := compress.CompressionStats{Algorithm: codec.Type(), OriginalSize: int64(len(data))}
	packed, err := codec.Compress(data)
	if err != nil {
		return stats, err
	}

	unpacked, err := codec.Decompress(packed)
	if err != nil {
		return stats, fmt.Errorf("verify %s output: %w", codec.Type(), err)
	}
	if !bytes.Equal(unpacked, data) {
		return stats, fmt.Errorf("verify %s output: round trip differs from input", codec.Type())
	}

	n, err := f.Write(packed)
	stats.CompressedSize = int64(n)

	return stats, err
}

func writePacked(path string, codec compress.Codec, data []byte, events int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	stats, err := packData(codec, f, data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return err
	}

	logger.WithFields(logrus.Fields{
		"file":     path,
		"codec":    stats.Algorithm.String(),
		"events":   events,
		"original": humanize.IBytes(uint64(stats.OriginalSize)),
		"packed":   humanize.IBytes(uint64(stats.CompressedSize)),
		"savings":  fmt.Sprintf("%.1f%%", stats.SpaceSavings()),
	}).Info("packed event file")

	return nil
}
