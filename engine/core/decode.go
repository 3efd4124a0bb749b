package core

import (
	"github.com/mitchellh/mapstructure"
)

// FromMapDefault decodes a generic map into T using weakly typed input, so
// YAML scalars that arrive as strings still land in typed fields.
func FromMapDefault[T any](data any) (T, error) {
	var out T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return out, err
	}
	return out, decoder.Decode(data)
}
