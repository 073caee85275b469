// Package runid names a single CLI invocation so its log lines and error
// reports can be correlated.
package runid

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/speps/go-hashids/v2"
)

const (
	base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	slugSize       = 7
	slugNumBytes   = 4
	suffixNumBytes = 12
	suffixBase     = 62
)

// ID is prefix_<slug><suffix>. The slug is a hashid of the first 4 random
// bytes, the suffix is the remaining 12 bytes in base62.
type ID struct {
	prefix string
	value  [16]byte
}

func New(prefix string) ID {
	return ID{prefix: prefix, value: uuid.New()}
}

func (id ID) Prefix() string {
	return id.prefix
}

// Slug is a short, URL friendly prefix of the random part. Good enough to
// search logs with.
func (id ID) Slug() string {
	s, err := encodeSlug(id.value[:slugNumBytes])
	if err != nil {
		// hashids only fails on a bad alphabet or negative input
		panic(err)
	}
	return s
}

func (id ID) String() string {
	return fmt.Sprintf("%s_%s%s", id.prefix, id.Slug(), encodeSuffix(id.value[slugNumBytes:]))
}

func coder() (*hashids.HashID, error) {
	h, err := hashids.NewWithData(&hashids.HashIDData{
		Alphabet:  base58Alphabet,
		MinLength: slugSize,
	})
	return h, errors.WithStack(err)
}

func encodeSlug(b []byte) (string, error) {
	h, err := coder()
	if err != nil {
		return "", err
	}
	s, err := h.EncodeInt64([]int64{int64(binary.BigEndian.Uint32(b))})
	return s, errors.WithStack(err)
}

func decodeSlug(s string) ([]byte, error) {
	h, err := coder()
	if err != nil {
		return nil, err
	}
	n, err := h.DecodeInt64WithError(s)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	b := make([]byte, slugNumBytes)
	binary.BigEndian.PutUint32(b, uint32(n[0]))
	return b, nil
}

func encodeSuffix(b []byte) string {
	return fmt.Sprintf("%017s", new(big.Int).SetBytes(b).Text(suffixBase))
}

func decodeSuffix(s string) []byte {
	i, _ := new(big.Int).SetString(s, suffixBase)
	b := make([]byte, suffixNumBytes)
	i.FillBytes(b)
	return b
}
