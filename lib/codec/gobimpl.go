package codec

import (
	"encoding/gob"
	"github.com/ValentinKolb/dRec/lib/common"
	"io"
)

// NewGOBCodec creates a new codec using Go's binary gob format
func NewGOBCodec() ICodec {
	return &gobCodecImpl{}
}

// gobCodecImpl implements the ICodec interface using gob encoding
type gobCodecImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.ICodec)
// --------------------------------------------------------------------------

func (g gobCodecImpl) Encode(w io.Writer, v any) error {
	return gob.NewEncoder(w).Encode(v)
}

func (g gobCodecImpl) Decode(r io.Reader, v any) error {
	return gob.NewDecoder(r).Decode(v)
}

func (g gobCodecImpl) Format() common.StoreFormat {
	return common.FormatGOB
}
