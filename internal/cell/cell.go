// Package cell decodes the text cells of the AISC shapes database.
//
// Dimensions in the database are written in engineering notation: plain
// decimals ("0.215"), vulgar fractions ("3/16") and mixed numbers
// ("5 7/8"). Properties that do not apply to a shape carry the en dash
// sentinel instead of a value.
package cell

import (
	"fmt"
	"strconv"
	"strings"
)

// Sentinel marks a property with no value in the source data.
const Sentinel = "–"

// Tokens used by the "has special note" column (T_F).
const (
	True  = "T"
	False = "F"
)

// Fractions maps every vulgar fraction used by the database to its value.
// Detailing dimensions are given to the nearest sixteenth of an inch.
var Fractions = map[string]float64{
	"1/16":  0.0625,
	"1/8":   0.125,
	"3/16":  0.1875,
	"1/4":   0.25,
	"5/16":  0.3125,
	"3/8":   0.375,
	"7/16":  0.4375,
	"1/2":   0.5,
	"9/16":  0.5625,
	"5/8":   0.625,
	"11/16": 0.6875,
	"3/4":   0.75,
	"13/16": 0.8125,
	"7/8":   0.875,
	"15/16": 0.9375,
}

// DecodeError reports a cell that cannot be read as a number.
// The reference data is expected to be clean, so callers treat it as fatal
// for the source being read.
type DecodeError struct {
	Text   string
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot decode cell %q: %s: %v", e.Text, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot decode cell %q: %s", e.Text, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Float decodes a numeric cell. It returns nil for the sentinel.
func Float(text string) (*float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == Sentinel {
		return nil, nil
	}

	tokens := strings.Fields(trimmed)
	switch len(tokens) {
	case 1:
		if strings.Contains(tokens[0], "/") {
			frac, err := fraction(text, tokens[0])
			if err != nil {
				return nil, err
			}
			return &frac, nil
		}
		v, err := strconv.ParseFloat(tokens[0], 64)
		if err != nil {
			return nil, &DecodeError{Text: text, Reason: "not a number", Err: err}
		}
		return &v, nil
	case 2:
		whole, err := strconv.ParseFloat(tokens[0], 64)
		if err != nil {
			return nil, &DecodeError{Text: text, Reason: "whole part is not a number", Err: err}
		}
		frac, err := fraction(text, tokens[1])
		if err != nil {
			return nil, err
		}
		v := whole + frac
		return &v, nil
	default:
		return nil, &DecodeError{Text: text, Reason: fmt.Sprintf("expected 1 or 2 tokens, got %d", len(tokens))}
	}
}

// Bool decodes the special note flag. Anything other than the two flag
// tokens is treated as absent.
func Bool(text string) *bool {
	var v bool
	switch strings.TrimSpace(text) {
	case True:
		v = true
	case False:
		v = false
	default:
		return nil
	}
	return &v
}

func fraction(text, token string) (float64, error) {
	v, ok := Fractions[token]
	if !ok {
		return 0, &DecodeError{Text: text, Reason: fmt.Sprintf("unknown fraction %q", token)}
	}
	return v, nil
}
