package codec

import (
	"fmt"
	"github.com/ValentinKolb/dRec/lib/common"
	"io"
)

// ICodec is the interface for all record store snapshot codecs
type ICodec interface {
	// Encode writes the serialized form of v to w
	// It returns an error if v cannot be serialized or w fails
	Encode(w io.Writer, v any) error
	// Decode reads a serialized value from r into the value pointed to by v
	// It returns an error if the input is malformed
	Decode(r io.Reader, v any) error
	// Format returns the store format implemented by the codec
	Format() common.StoreFormat
}

// ForFormat returns the codec for a structured store format.
// The transcript "lines" format is not a snapshot codec and is rejected here.
func ForFormat(format common.StoreFormat) (ICodec, error) {
	switch format {
	case common.FormatJSON:
		return NewJSONCodec(), nil
	case common.FormatYAML:
		return NewYAMLCodec(), nil
	case common.FormatGOB:
		return NewGOBCodec(), nil
	default:
		return nil, fmt.Errorf("invalid codec %s (expected one of json, yaml, gob)", format)
	}
}
