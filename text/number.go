package text

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/npillmayer/lingua/culture"
	"github.com/npillmayer/lingua/numfmt"
	"go.trai.ch/zerr"
)

// ErrNotANumber flags a value which cannot be formatted as a number.
var ErrNotANumber = errors.New("text: not a number")

// FormatNumber formats a number. value is one of Go's integer or float
// types, a numfmt.Decimal, a *big.Int or a decimal string. opts may be nil
// for the culture's defaults. If c is nil, the text follows the current
// culture.
func (e *Engine) FormatNumber(value any, opts *numfmt.Options, c *culture.Culture) Text {
	return e.formatNumber(culture.AsNumber, value, opts, "", c)
}

// FormatPercent formats a fraction as a percentage: 0.25 is 25%.
func (e *Engine) FormatPercent(value any, opts *numfmt.Options, c *culture.Culture) Text {
	return e.formatNumber(culture.AsPercent, value, opts, "", c)
}

// FormatCurrency formats an amount of money in the currency given by its
// ISO 4217 code. An empty code selects the currency of the culture.
func (e *Engine) FormatCurrency(value any, opts *numfmt.Options, code string, c *culture.Culture) Text {
	return e.formatNumber(culture.AsCurrency, value, opts, code, c)
}

func (e *Engine) formatNumber(kind culture.NumberKind, value any, opts *numfmt.Options,
	code string, c *culture.Culture) Text {
	//
	d, err := toDecimal(value)
	if err != nil {
		return e.failure(kind.String(), err)
	}
	if opts != nil && !opts.IsDefault() {
		o := opts.Normalized() // private copy
		opts = &o
	}
	h := numberFormat{kind: kind, value: d, opts: opts, culture: c, currency: code}
	return e.newText(h.render(e.cultureOr(c)), h, 0)
}

func toDecimal(value any) (numfmt.Decimal, error) {
	switch v := value.(type) {
	case numfmt.Decimal:
		return v, nil
	case int:
		return numfmt.FromInt(int64(v)), nil
	case int8:
		return numfmt.FromInt(int64(v)), nil
	case int16:
		return numfmt.FromInt(int64(v)), nil
	case int32:
		return numfmt.FromInt(int64(v)), nil
	case int64:
		return numfmt.FromInt(v), nil
	case uint:
		return numfmt.FromUint(uint64(v)), nil
	case uint8:
		return numfmt.FromUint(uint64(v)), nil
	case uint16:
		return numfmt.FromUint(uint64(v)), nil
	case uint32:
		return numfmt.FromUint(uint64(v)), nil
	case uint64:
		return numfmt.FromUint(v), nil
	case float32:
		return numfmt.FromFloat(float64(v)), nil
	case float64:
		return numfmt.FromFloat(v), nil
	case *big.Int:
		if v == nil {
			break
		}
		return numfmt.FromString(v.String())
	case string:
		d, err := numfmt.FromString(v)
		if err != nil {
			return d, zerr.With(err, "value", v)
		}
		return d, nil
	}
	return numfmt.Decimal{}, zerr.With(ErrNotANumber, "type", fmt.Sprintf("%T", value))
}
