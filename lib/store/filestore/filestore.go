package filestore

import (
	"bufio"
	"github.com/ValentinKolb/dRec/lib/codec"
	"github.com/ValentinKolb/dRec/lib/store"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/pkg/errors"
	"io"
	"os"
	"path/filepath"
)

var plog = logger.GetLogger("store")

// unavailable wraps a file level failure into a store-unavailable *store.Error
func unavailable(err error, format string, args ...interface{}) error {
	return errors.Wrapf(store.NewError(store.RetCStoreUnavailable, err.Error()), format, args...)
}

// --------------------------------------------------------------------------
// Raw access
// --------------------------------------------------------------------------

// Read opens the file at path and passes a buffered reader to fn.
// A missing file is not an error: found is false and fn is never called.
// Errors returned by fn are wrapped as store-unavailable unless they already
// carry a store return code.
func Read(path string, fn func(r io.Reader) error) (found bool, err error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		plog.Debugf("store file %s does not exist, starting empty", path)
		return false, nil
	}
	if err != nil {
		return false, unavailable(err, "opening %s", path)
	}
	defer func() { _ = f.Close() }()

	if err := fn(bufio.NewReader(f)); err != nil {
		if store.CodeOf(err) != store.RetCInternalError {
			return true, errors.Wrapf(err, "reading %s", path)
		}
		return true, unavailable(err, "reading %s", path)
	}
	plog.Debugf("loaded store file %s", path)
	return true, nil
}

// Write truncates (or creates) the file at path and passes a buffered writer to fn.
// The parent directory is created if needed.
//
// The write is not atomic: a failure halfway leaves a truncated file behind.
func Write(path string, fn func(w io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return unavailable(err, "creating directory for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return unavailable(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = unavailable(cerr, "closing %s", path)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		return unavailable(err, "writing %s", path)
	}
	if err := bw.Flush(); err != nil {
		return unavailable(err, "flushing %s", path)
	}
	plog.Debugf("saved store file %s", path)
	return nil
}

// --------------------------------------------------------------------------
// Codec access
// --------------------------------------------------------------------------

// Load decodes the file at path into v using the codec.
// found is false (and v untouched) if the file does not exist.
// A malformed file is a store-unavailable error; there is no partial recovery.
func Load(path string, c codec.ICodec, v any) (found bool, err error) {
	return Read(path, func(r io.Reader) error {
		return c.Decode(r, v)
	})
}

// Save overwrites the file at path with the encoding of v.
func Save(path string, c codec.ICodec, v any) error {
	return Write(path, func(w io.Writer) error {
		return c.Encode(w, v)
	})
}
