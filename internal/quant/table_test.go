package quant

import (
	"fmt"
	"testing"
)

func TestDefaultBits(t *testing.T) {
	want := map[string]int{
		"Q2_K": 4, "Q4_0": 8, "Q4_1": 8, "Q4_K": 8, "Q4_K_S": 8, "Q4_K_M": 8,
		"Q5_0": 10, "Q5_1": 10, "Q6_K": 12, "Q8_0": 16, "Q8_K": 16,
		"int4": 4, "int8": 8, "nf4": 4,
		"fp16": 16, "bf16": 16, "fp32": 32,
	}
	tbl := Default()
	if tbl.Len() != len(want) {
		t.Fatalf("len = %d, want %d", tbl.Len(), len(want))
	}
	for tag, bits := range want {
		got, err := tbl.Bits(tag)
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", tag, err)
		}
		if got != bits {
			t.Fatalf("%s -> %d, want %d", tag, got, bits)
		}
	}
}

func TestBitsUnknownTag(t *testing.T) {
	tbl := Default()
	for _, tag := range []string{"Q99_X", "", "q4_0", "FP16", " Q4_0"} {
		_, err := tbl.Bits(tag)
		if err == nil {
			t.Fatalf("%q: expected error", tag)
		}
		if !IsUnknownTag(err) {
			t.Fatalf("%q: expected unknown tag error, got %v", tag, err)
		}
	}
	_, err := tbl.Bits("Q99_X")
	if err.Error() != "quantization tag 'Q99_X' not recognized" {
		t.Fatalf("unexpected message: %v", err)
	}
	if !IsUnknownTag(fmt.Errorf("wrap: %w", err)) {
		t.Fatalf("wrapped error not classified")
	}
}

func TestZeroTable(t *testing.T) {
	var tbl Table
	if tbl.Len() != 0 {
		t.Fatalf("zero table not empty")
	}
	if _, err := tbl.Bits("Q4_0"); !IsUnknownTag(err) {
		t.Fatalf("expected miss on zero table, got %v", err)
	}
	if len(tbl.Tags()) != 0 {
		t.Fatalf("zero table lists tags")
	}
}

func TestTagsSorted(t *testing.T) {
	tags := Default().Tags()
	if len(tags) != 17 {
		t.Fatalf("got %d tags", len(tags))
	}
	if tags[0].Tag != "Q2_K" || tags[0].Bits != 4 {
		t.Fatalf("first = %+v", tags[0])
	}
	if last := tags[len(tags)-1]; last.Tag != "fp32" || last.Bits != 32 {
		t.Fatalf("last = %+v", last)
	}
	for i := 1; i < len(tags); i++ {
		a, b := tags[i-1], tags[i]
		if a.Bits > b.Bits || (a.Bits == b.Bits && a.Tag >= b.Tag) {
			t.Fatalf("not sorted at %d: %+v then %+v", i, a, b)
		}
	}
}

func TestWith(t *testing.T) {
	base := Default()
	tbl, err := base.With(map[string]int{"Q3_K_M": 6, "Q4_0": 5, " awq ": 4})
	if err != nil {
		t.Fatalf("with: %v", err)
	}
	if b, _ := tbl.Bits("Q3_K_M"); b != 6 {
		t.Fatalf("Q3_K_M -> %d", b)
	}
	if b, _ := tbl.Bits("Q4_0"); b != 5 {
		t.Fatalf("Q4_0 override -> %d", b)
	}
	if b, _ := tbl.Bits("awq"); b != 4 {
		t.Fatalf("awq -> %d", b)
	}
	if tbl.Len() != base.Len()+2 {
		t.Fatalf("len = %d", tbl.Len())
	}

	// receiver untouched
	if b, _ := base.Bits("Q4_0"); b != 8 {
		t.Fatalf("base mutated: Q4_0 -> %d", b)
	}
	if _, err := base.Bits("Q3_K_M"); !IsUnknownTag(err) {
		t.Fatalf("base gained override tag")
	}
}

func TestWithRejectsInvalid(t *testing.T) {
	cases := []map[string]int{
		{"": 4},
		{"  ": 4},
		{"Q4_0": 0},
		{"x": -8},
	}
	for _, c := range cases {
		if _, err := Default().With(c); err == nil {
			t.Fatalf("%v: expected error", c)
		}
	}
}

func TestWithNil(t *testing.T) {
	tbl, err := Default().With(nil)
	if err != nil {
		t.Fatalf("with nil: %v", err)
	}
	if tbl.Len() != 17 {
		t.Fatalf("len = %d", tbl.Len())
	}
}
