// Package quant holds the bits-per-parameter heuristics for quantization
// schemes.
package quant

import (
	"fmt"
	"slices"
	"strings"
)

// defaultBits maps each known tag to its approximate bits per parameter,
// format overhead included.
var defaultBits = map[string]int{
	// llama.cpp
	"Q2_K":   4,
	"Q4_0":   8,
	"Q4_1":   8,
	"Q4_K":   8,
	"Q4_K_S": 8,
	"Q4_K_M": 8,
	"Q5_0":   10,
	"Q5_1":   10,
	"Q6_K":   12,
	"Q8_0":   16,
	"Q8_K":   16,
	// GPTQ / bitsandbytes
	"int4": 4,
	"int8": 8,
	"nf4":  4,
	// floats
	"fp16": 16,
	"bf16": 16,
	"fp32": 32,
}

// Table is an immutable tag -> bits-per-parameter lookup. The zero value is an
// empty table.
type Table struct {
	bits map[string]int
}

// Entry is one row of a Table.
type Entry struct {
	Tag  string `json:"tag" yaml:"tag"`
	Bits int    `json:"bits" yaml:"bits"`
}

// Default returns the built-in table.
func Default() Table {
	m := make(map[string]int, len(defaultBits))
	for k, v := range defaultBits {
		m[k] = v
	}
	return Table{bits: m}
}

// Bits returns the bits per parameter for tag. Lookup is exact and
// case-sensitive.
func (t Table) Bits(tag string) (int, error) {
	b, ok := t.bits[tag]
	if !ok {
		return 0, ErrUnknownTag(tag)
	}
	return b, nil
}

// Len reports the number of known tags.
func (t Table) Len() int { return len(t.bits) }

// Tags lists every entry ordered by bits, then tag.
func (t Table) Tags() []Entry {
	out := make([]Entry, 0, len(t.bits))
	for k, v := range t.bits {
		out = append(out, Entry{Tag: k, Bits: v})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if a.Bits != b.Bits {
			return a.Bits - b.Bits
		}
		return strings.Compare(a.Tag, b.Tag)
	})
	return out
}

// With returns a copy of t with overrides applied. Tags must be non-empty and
// bit counts positive; t itself is left untouched.
func (t Table) With(overrides map[string]int) (Table, error) {
	m := make(map[string]int, len(t.bits)+len(overrides))
	for k, v := range t.bits {
		m[k] = v
	}
	for k, v := range overrides {
		tag := strings.TrimSpace(k)
		if tag == "" {
			return Table{}, fmt.Errorf("quantization override: empty tag")
		}
		if v <= 0 {
			return Table{}, fmt.Errorf("quantization override %q: bits must be positive, got %d", tag, v)
		}
		m[tag] = v
	}
	return Table{bits: m}, nil
}
