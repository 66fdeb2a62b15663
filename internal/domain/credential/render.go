package credential

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/fiberops/subcore/internal/shared/id"
)

// RandomSource produces random strings over an alphabet.
type RandomSource interface {
	Random(alphabet string, length int) (string, error)
}

// CryptoRandom draws from crypto/rand.
type CryptoRandom struct{}

func (CryptoRandom) Random(alphabet string, length int) (string, error) {
	return id.GenerateFrom(alphabet, length)
}

// Render concatenates the rendering of each token in order. Missing profile
// fields render as "".
func Render(tokens []Token, p Profile, rnd RandomSource) (string, error) {
	var b strings.Builder
	for _, t := range tokens {
		s, err := renderToken(t, p, rnd)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func renderToken(t Token, p Profile, rnd RandomSource) (string, error) {
	switch t.Kind {
	case TokenFirstName:
		return NormalizeName(p.FirstName), nil
	case TokenFirstInitial:
		return initial(p.FirstName), nil
	case TokenMiddleName:
		return NormalizeName(p.MiddleName), nil
	case TokenMiddleInitial:
		return initial(p.MiddleName), nil
	case TokenLastName:
		return NormalizeName(p.LastName), nil
	case TokenLastInitial:
		return initial(p.LastName), nil
	case TokenMobileLast4:
		return lastDigits(p.Mobile, 4), nil
	case TokenMobileLast6:
		return lastDigits(p.Mobile, 6), nil
	case TokenLCP:
		return compact(p.LCP), nil
	case TokenNAP:
		return compact(p.NAP), nil
	case TokenPort:
		return compact(p.Port), nil
	case TokenLiteral:
		return t.Value, nil
	case TokenRandomDigits:
		return rnd.Random(id.Digits, t.Length)
	case TokenRandomLetters:
		return rnd.Random(id.Letters, t.Length)
	case TokenRandomAlphanumeric:
		return rnd.Random(id.Alphanumeric, t.Length)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTokenKind, t.Kind)
	}
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName strips diacritics, drops everything that is not a letter or
// digit and lower-cases the result: "José  De la Cruz" becomes "josedelacruz".
func NormalizeName(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, folded)
}

func initial(s string) string {
	n := NormalizeName(s)
	for _, r := range n {
		return string(r)
	}
	return ""
}

func lastDigits(s string, n int) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if len(digits) <= n {
		return digits
	}
	return digits[len(digits)-n:]
}

func compact(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
