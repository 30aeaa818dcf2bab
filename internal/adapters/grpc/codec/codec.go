// Package codec は gRPC の content-subtype "json" 用コーデックを提供します。
package codec

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Name は登録されるコーデック名で、content-subtype としても使われます。
const Name = "json"

func init() {
	encoding.RegisterCodec(JSON{})
}

// JSON は proto.Message を protojson で、それ以外の値を encoding/json で符号化します。
type JSON struct{}

var (
	marshalOptions   = protojson.MarshalOptions{UseProtoNames: true}
	unmarshalOptions = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// Marshal は v を JSON に符号化します。
func (JSON) Marshal(v any) ([]byte, error) {
	if msg, ok := v.(proto.Message); ok {
		b, err := marshalOptions.Marshal(msg)
		if err != nil {
			return nil, fmt.Errorf("codec: marshal %T: %w", v, err)
		}
		return b, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: marshal %T: %w", v, err)
	}
	return b, nil
}

// Unmarshal は data を v に復号します。空のペイロードはゼロ値のまま扱います。
func (JSON) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if msg, ok := v.(proto.Message); ok {
		if err := unmarshalOptions.Unmarshal(data, msg); err != nil {
			return fmt.Errorf("codec: unmarshal %T: %w", v, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name はコーデック名を返します。
func (JSON) Name() string {
	return Name
}
