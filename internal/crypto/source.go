package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
)

const (
	SourceMath   = "math"
	SourceCrypto = "crypto"
)

var ErrUnknownSource = errors.New("unknown random source")

// Source yields uniform indexes in [0, n).
// *math/rand/v2.Rand satisfies it, which lets tests use seeded generators.
type Source interface {
	IntN(n int) int
}

type mathSource struct{}

func (mathSource) IntN(n int) int { return mathrand.IntN(n) }

// MathSource returns the default non-cryptographic source. It is safe for concurrent use.
func MathSource() Source {
	return mathSource{}
}

type cryptoSource struct{}

// IntN panics if the system random source fails; crypto/rand does not return
// errors from its Reader on supported platforms.
func (cryptoSource) IntN(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	return int(v.Int64())
}

// CryptoSource returns a source backed by crypto/rand.
func CryptoSource() Source {
	return cryptoSource{}
}

// NewSource resolves a source by name: "math" (or empty) and "crypto".
func NewSource(name string) (Source, error) {
	switch name {
	case "", SourceMath:
		return MathSource(), nil
	case SourceCrypto:
		return CryptoSource(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
}
