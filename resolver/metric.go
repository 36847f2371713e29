/*
Copyright 2026 The BrandKit Authors. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/t0rst/brandkit/brand"
)

// The metric grammar is a slash-delimited expression language. Each value is
// one of:
//
//	(empty)           zero
//	12, 0.5, 0x7f     a numeric literal (hex accepted)
//	named/<name>      another metric entry's value
//	<name>            shorthand for named/<name> when the entry exists
//	add/<args...>     sum of the args
//	mul/<args...>     product of the args
//	min/<args...>     least arg
//	max/<args...>     greatest arg
//	switch/<i>/<args> the i'th arg, clamped to the last when out of range
//
// Function argument lists consume the entire remainder of the expression, so
// functions nest only as the final argument position.

// metricValue resolves raw as exactly one metric value. Trailing unconsumed
// text is a failure.
func (s *session) metricValue(raw string, deps *[]brand.Dependency) (float64, error) {
	vals, err := s.metricSlice(raw, 1, deps)
	if err != nil {
		return 0, err
	}
	return vals[0], nil
}

// metricSlice resolves raw as exactly count metric values. Spaces are
// stripped before tokenizing. Producing fewer values than requested, or
// leaving tokens unconsumed after the last, is a failure.
func (s *session) metricSlice(raw string, count int, deps *[]brand.Dependency) ([]float64, error) {
	tokens := strings.Split(strings.ReplaceAll(raw, " ", ""), "/")
	vals := make([]float64, 0, count)
	i := 0
	for len(vals) < count {
		if i >= len(tokens) {
			return nil, fmt.Errorf("expected %d values, got %d in %q", count, len(vals), raw)
		}
		v, next, err := s.metricToken(tokens, i, deps)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		i = next
	}
	if i != len(tokens) {
		return nil, fmt.Errorf("malformed expression %q: trailing %q", raw, strings.Join(tokens[i:], "/"))
	}
	return vals, nil
}

// metricTokens resolves every remaining token of raw to a value, however
// many there are. Used for free-length parameter arrays.
func (s *session) metricTokens(raw string, deps *[]brand.Dependency) ([]float64, error) {
	tokens := strings.Split(strings.ReplaceAll(raw, " ", ""), "/")
	return s.metricList(tokens, 0, deps)
}

// metricToken resolves one value starting at tokens[i] and returns the index
// of the first unconsumed token.
func (s *session) metricToken(tokens []string, i int, deps *[]brand.Dependency) (float64, int, error) {
	tok := tokens[i]
	switch tok {
	case "":
		return 0, i + 1, nil

	case "named":
		if i+1 >= len(tokens) {
			return 0, 0, fmt.Errorf("named: missing metric name")
		}
		return s.namedMetric(tokens[i+1], i+2, deps)

	case "add", "mul", "min", "max":
		args, err := s.metricList(tokens, i+1, deps)
		if err != nil {
			return 0, 0, err
		}
		if len(args) <= 1 {
			return 0, 0, fmt.Errorf("%s: needs more than one argument", tok)
		}
		return reduce(tok, args), len(tokens), nil

	case "switch":
		args, err := s.metricList(tokens, i+1, deps)
		if err != nil {
			return 0, 0, err
		}
		if len(args) <= 2 {
			return 0, 0, fmt.Errorf("switch: needs a selector and at least two cases")
		}
		sel, cases := args[0], args[1:]
		idx := int(sel)
		if float64(idx) != sel || idx < 0 || idx >= len(cases) {
			idx = len(cases) - 1
		}
		return cases[idx], len(tokens), nil
	}

	if v, ok := parseNumber(tok); ok {
		return v, i + 1, nil
	}

	// Bare names are metric references when the entry exists.
	if s.r.metricEntry(tok) != nil {
		return s.namedMetric(tok, i+1, deps)
	}

	return 0, 0, fmt.Errorf("unresolved expression %q", tok)
}

// metricList resolves all tokens from i to the end of the expression.
func (s *session) metricList(tokens []string, i int, deps *[]brand.Dependency) ([]float64, error) {
	var vals []float64
	for i < len(tokens) {
		v, next, err := s.metricToken(tokens, i, deps)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		i = next
	}
	return vals, nil
}

// namedMetric resolves a reference to another metric entry and records the
// dependency edge.
func (s *session) namedMetric(name string, next int, deps *[]brand.Dependency) (float64, int, error) {
	*deps = append(*deps, brand.Dependency{Kind: brand.KindMetric, Name: name})
	v := s.metric(name)
	if brand.IsInvalidMetric(v) {
		return 0, 0, fmt.Errorf("unresolvable metric %q", name)
	}
	return v, next, nil
}

func reduce(op string, args []float64) float64 {
	switch op {
	case "add":
		sum := 0.0
		for _, v := range args {
			sum += v
		}
		return sum
	case "mul":
		product := 1.0
		for _, v := range args {
			product *= v
		}
		return product
	case "min":
		least := args[0]
		for _, v := range args[1:] {
			if v < least {
				least = v
			}
		}
		return least
	default: // max
		greatest := args[0]
		for _, v := range args[1:] {
			if v > greatest {
				greatest = v
			}
		}
		return greatest
	}
}

// parseNumber parses a decimal or hexadecimal numeric literal.
// strconv.ParseFloat only accepts hex with a binary exponent, so plain 0x
// forms go through integer parsing.
func parseNumber(tok string) (float64, bool) {
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return v, true
	}
	if v, err := strconv.ParseInt(tok, 0, 64); err == nil {
		return float64(v), true
	}
	return 0, false
}
