package popup

import (
	"fmt"
	"strconv"
)

// TranslationMap substitutes a transform function for a positional property,
// e.g. {"top": "translateY"} turns `top: -100%` into
// `transform: translateY(-100%)`.
type TranslationMap map[string]string

// DefaultTranslation animates the transform rather than the top offset.
var DefaultTranslation = TranslationMap{"top": "translateY"}

// offsetProperty is the positional property the tray slides along.
const offsetProperty = "top"

// Declaration is a single style declaration describing where the sliding
// content sits. Fraction is the same offset expressed as a multiple of the
// content's own height (-1 above, 0 flush, 1 below), which is what the
// terminal renderer uses.
type Declaration struct {
	Property string
	Value    string
	Fraction float64
}

// IsZero reports whether no offset is applied at all.
func (d Declaration) IsZero() bool {
	return d.Property == ""
}

// String renders the declaration as CSS text.
func (d Declaration) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Property + ": " + d.Value
}

// declare builds the declaration for a fraction, honoring the translation map.
func declare(fraction float64, tm TranslationMap) Declaration {
	value := formatFraction(fraction)
	if fn, ok := tm[offsetProperty]; ok && fn != "" {
		return Declaration{
			Property: "transform",
			Value:    fmt.Sprintf("%s(%s)", fn, value),
			Fraction: fraction,
		}
	}
	return Declaration{Property: offsetProperty, Value: value, Fraction: fraction}
}

func formatFraction(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f*100, 'f', -1, 64) + "%"
}

// hiddenFraction is where a hidden tray sits: above its container when
// dropping down, below it when dropping up.
func hiddenFraction(dropUp bool) float64 {
	if dropUp {
		return 1
	}
	return -1
}

// offsetFor maps a status to its resting offset.
func offsetFor(s Status, dropUp bool, tm TranslationMap) Declaration {
	switch s {
	case StatusClosed, StatusOpening:
		return declare(hiddenFraction(dropUp), tm)
	case StatusOpen, StatusClosing:
		return declare(0, tm)
	}
	return Declaration{}
}
