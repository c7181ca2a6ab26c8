package codec

import (
	"github.com/ValentinKolb/dRec/lib/common"
	"gopkg.in/yaml.v3"
	"io"
)

// NewYAMLCodec creates a new codec using yaml encoding
func NewYAMLCodec() ICodec {
	return &yamlCodecImpl{}
}

// yamlCodecImpl implements the ICodec interface using yaml encoding
type yamlCodecImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see codec.ICodec)
// --------------------------------------------------------------------------

func (y yamlCodecImpl) Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (y yamlCodecImpl) Decode(r io.Reader, v any) error {
	return yaml.NewDecoder(r).Decode(v)
}

func (y yamlCodecImpl) Format() common.StoreFormat {
	return common.FormatYAML
}
