package crc

import (
	"math/big"
	"testing"
)

func TestParseValue(t *testing.T) {
	type testRow struct {
		input  string
		expect string
		ok     bool
	}

	var testData = [...]testRow{
		{"0", "0x0", true},
		{"0x0", "0x0", true},
		{"255", "0xff", true},
		{"0xFF", "0xff", true},
		{"0x_dead_beef", "0xdeadbeef", true},
		{"  0x1021  ", "0x1021", true},
		{"0x0308c0111011401440411", "0x308c0111011401440411", true},
		{"", "", false},
		{"0x", "", false},
		{"-1", "", false},
		{"0xZZ", "", false},
		{"12ab", "", false},
	}

	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			v, err := ParseValue(row.input)
			if !row.ok {
				if err == nil {
					t.Errorf("expected error, got %v", v)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseValue failed: %v", err)
				return
			}
			if actual := v.String(); actual != row.expect {
				t.Errorf("expected %s, got %s", row.expect, actual)
			}
		})
	}
}

func TestValue(t *testing.T) {
	wide := MustParseValue("0x123456789abcdef0fedcba98")

	if n := wide.BitLen(); n != 93 {
		t.Errorf("BitLen: expected 93, got %d", n)
	}
	if u := wide.Uint64(); u != 0x9abcdef0fedcba98 {
		t.Errorf("Uint64: expected low 64 bits, got %#x", u)
	}
	if !wide.Bit(3) || wide.Bit(0) {
		t.Errorf("Bit: wrong bits for %v", wide)
	}
	if s := V(0x1d).Hex(4); s != "001d" {
		t.Errorf("Hex(4): expected 001d, got %s", s)
	}
	if s := (Value{}).Hex(2); s != "00" {
		t.Errorf("Hex(2) of zero: expected 00, got %s", s)
	}
	if !V(0).Equal(Value{}) || !(Value{}).IsZero() {
		t.Error("V(0) is not the zero Value")
	}
	if !wide.And(V(0xff)).Equal(V(0x98)) {
		t.Errorf("And: got %v", wide.And(V(0xff)))
	}

	n := big.NewInt(77)
	v := ValueFromBig(n)
	n.SetInt64(1)
	if !v.Equal(V(77)) {
		t.Errorf("ValueFromBig did not copy: got %v", v)
	}
	b := v.Big()
	b.SetInt64(2)
	if !v.Equal(V(77)) {
		t.Errorf("Big did not copy: got %v", v)
	}
}

func TestValue_Text(t *testing.T) {
	in := MustParseValue("0x09ea83f625023801fd612")
	raw, err := in.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(raw) != "0x9ea83f625023801fd612" {
		t.Errorf("MarshalText: got %q", raw)
	}

	var out Value
	if err := out.UnmarshalText(raw); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("expected %v, got %v", in, out)
	}
	if gs := in.GoString(); gs != `crc.MustParseValue("0x9ea83f625023801fd612")` {
		t.Errorf("GoString: got %s", gs)
	}
}
