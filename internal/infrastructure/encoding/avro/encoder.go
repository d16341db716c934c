package avro

import (
	"fmt"

	"github.com/linkedin/goavro/v2"
)

// Encoder wraps a goavro codec. goavro codecs are safe for concurrent use.
type Encoder struct {
	codec *goavro.Codec
}

// NewEncoder creates a new encoder from an Avro schema string
func NewEncoder(schema string) (*Encoder, error) {
	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create avro codec: %w", err)
	}
	return &Encoder{codec: codec}, nil
}

// NewOrderPlacedEncoder is NewEncoder for OrderPlacedSchema.
func NewOrderPlacedEncoder() (*Encoder, error) {
	return NewEncoder(OrderPlacedSchema)
}

// EncodeNative converts a Go native map to Avro binary format
func (e *Encoder) EncodeNative(native map[string]interface{}) ([]byte, error) {
	binary, err := e.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("failed to encode to avro binary: %w", err)
	}
	return binary, nil
}

// DecodeNative is the inverse of EncodeNative.
func (e *Encoder) DecodeNative(binary []byte) (map[string]interface{}, error) {
	native, _, err := e.codec.NativeFromBinary(binary)
	if err != nil {
		return nil, fmt.Errorf("failed to decode avro binary: %w", err)
	}
	record, ok := native.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("avro datum is not a record")
	}
	return record, nil
}
