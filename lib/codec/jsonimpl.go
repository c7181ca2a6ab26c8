package codec

import (
	"encoding/json"
	"github.com/ValentinKolb/dRec/lib/common"
	"io"
)

// NewJSONCodec creates a new codec using indented json encoding
func NewJSONCodec() ICodec {
	return &jsonCodecImpl{}
}

// jsonCodecImpl implements the ICodec interface using json encoding
type jsonCodecImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.ICodec)
// --------------------------------------------------------------------------

func (j jsonCodecImpl) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (j jsonCodecImpl) Decode(r io.Reader, v any) error {
	return json.NewDecoder(r).Decode(v)
}

func (j jsonCodecImpl) Format() common.StoreFormat {
	return common.FormatJSON
}
