package crypto

import "strings"

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"

	Letters = uppercaseChars + lowercaseChars
	Digits  = "0123456789"
	Symbols = "#$%&'()*+,-./:;<=>?@[]^_`{|}~"

	MinLength     = 8
	MaxLength     = 16
	DefaultLength = 12
)

// Config configures the password generator.
type Config struct {
	Length         int
	IncludeDigits  bool
	IncludeSymbols bool
}

// DefaultConfig returns the configuration used on first load: 12 letters-only characters.
func DefaultConfig() Config {
	return Config{Length: DefaultLength}
}

// ClampLength bounds n to [MinLength, MaxLength], the range of the length control.
func ClampLength(n int) int {
	return min(max(n, MinLength), MaxLength)
}

// Alphabet returns the characters eligible for cfg: letters, then digits, then symbols.
func Alphabet(cfg Config) string {
	alphabet := Letters
	if cfg.IncludeDigits {
		alphabet += Digits
	}
	if cfg.IncludeSymbols {
		alphabet += Symbols
	}
	return alphabet
}

// Generate draws cfg.Length characters independently and with replacement from
// Alphabet(cfg). The length is not bounds-checked; zero or negative yields "".
// A nil src falls back to MathSource.
func Generate(cfg Config, src Source) string {
	if cfg.Length <= 0 {
		return ""
	}
	if src == nil {
		src = MathSource()
	}

	alphabet := Alphabet(cfg)

	var sb strings.Builder
	sb.Grow(cfg.Length)
	for i := 1; i <= cfg.Length; i++ {
		sb.WriteByte(alphabet[src.IntN(len(alphabet))])
	}

	return sb.String()
}
