// Package codec регистрирует JSON-кодек gRPC (content-subtype "json").
// Сообщения сервиса тренажёра — обычные Go-структуры с json-тегами, без protobuf.
package codec

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name — content-subtype кодека: клиент передаёт grpc.CallContentSubtype(Name).
const Name = "json"

func init() {
	encoding.RegisterCodec(JSON{})
}

// JSON реализует encoding.Codec поверх encoding/json.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (JSON) Name() string { return Name }
