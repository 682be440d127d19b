package token

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	EncoderBase64  = "base64"
	EncoderBlake2b = "blake2b"
)

// Encoder turns identifying fields into an opaque, deterministic marker.
// It stands in for hashes and signatures; it is not a security primitive.
type Encoder interface {
	Encode(fields ...string) string
}

// Base64Encoder joins the fields with "|" and emits unpadded standard base64.
type Base64Encoder struct{}

func (Base64Encoder) Encode(fields ...string) string {
	return base64.RawStdEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// Blake2bEncoder emits the hex BLAKE2b-256 digest of the "|"-joined fields.
type Blake2bEncoder struct{}

func (Blake2bEncoder) Encode(fields ...string) string {
	sum := blake2b.Sum256([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(sum[:])
}

func NewEncoder(name string) (Encoder, error) {
	switch strings.ToLower(name) {
	case "", EncoderBase64:
		return Base64Encoder{}, nil
	case EncoderBlake2b:
		return Blake2bEncoder{}, nil
	}
	return nil, fmt.Errorf("unknown token encoder %q", name)
}
