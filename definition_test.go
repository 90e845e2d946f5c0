package crc

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
)

func TestDefinition_Validate(t *testing.T) {
	type testRow struct {
		name     string
		def      Definition
		capacity uint
		problems int
	}

	var testData = [...]testRow{
		{
			name:     "ok",
			def:      mustPreset("CRC-16/XMODEM"),
			capacity: 16,
			problems: 0,
		},
		{
			name:     "too-narrow",
			def:      Definition{Name: "narrow", Width: 7, Poly: V(0x09)},
			capacity: 64,
			problems: 1,
		},
		{
			name:     "over-capacity",
			def:      mustPreset("CRC-40/GSM"),
			capacity: 32,
			problems: 1,
		},
		{
			name:     "zero-poly",
			def:      Definition{Name: "zero", Width: 16},
			capacity: 16,
			problems: 1,
		},
		{
			name:     "wide-fields",
			def:      Definition{Name: "wide", Width: 8, Poly: V(0x1ff), Init: V(0x100), Check: V(0x12)},
			capacity: 8,
			problems: 2,
		},
		{
			name:     "wide-mask",
			def:      Definition{Name: "mask", Width: 12, Poly: V(0x80f), Mask: V(0x1fff)},
			capacity: 16,
			problems: 1,
		},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			err := row.def.Validate(row.capacity)
			switch row.problems {
			case 0:
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}

			case 1:
				var ce ConfigError
				if !errors.As(err, &ce) {
					t.Errorf("expected ConfigError, got %T: %v", err, err)
					return
				}
				if ce.Name != row.def.Name || ce.Width != row.def.Width {
					t.Errorf("ConfigError names %q/%d, expected %q/%d", ce.Name, ce.Width, row.def.Name, row.def.Width)
				}

			default:
				var me *multierror.Error
				if !errors.As(err, &me) {
					t.Errorf("expected *multierror.Error, got %T: %v", err, err)
					return
				}
				if len(me.Errors) != row.problems {
					t.Errorf("expected %d problems, got %d: %v", row.problems, len(me.Errors), err)
				}
			}
		})
	}
}

func TestDefinition_EffectiveMask(t *testing.T) {
	def := mustPreset("CRC-12/DECT")
	if m := def.EffectiveMask(); !m.Equal(V(0xfff)) {
		t.Errorf("default mask: expected 0xfff, got %v", m)
	}
	if !def.HasDefaultMask() {
		t.Error("HasDefaultMask: expected true for zero Mask")
	}

	def.Mask = V(0xfff)
	if !def.HasDefaultMask() {
		t.Error("HasDefaultMask: expected true for explicit all-ones Mask")
	}

	def.Mask = V(0x7ff)
	if def.HasDefaultMask() {
		t.Error("HasDefaultMask: expected false for narrow Mask")
	}
	if m := def.EffectiveMask(); !m.Equal(V(0x7ff)) {
		t.Errorf("custom mask: expected 0x7ff, got %v", m)
	}
}

func TestDefinition_String(t *testing.T) {
	type testRow struct {
		name   string
		expect string
	}

	var testData = [...]testRow{
		{"CRC-16/XMODEM", `width=16 poly=0x1021 init=0x0000 refin=false refout=false xorout=0x0000 check=0x31c3 name="CRC-16/XMODEM"`},
		{"CRC-12/UMTS", `width=12 poly=0x80f init=0x000 refin=false refout=true xorout=0x000 check=0xdaf name="CRC-12/UMTS"`},
		{"CRC-32", `width=32 poly=0x04c11db7 init=0xffffffff refin=true refout=true xorout=0xffffffff check=0xcbf43926 name="CRC-32/ISO-HDLC"`},
	}

	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if actual := mustPreset(row.name).String(); actual != row.expect {
				t.Errorf("wrong String:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestParseDefinition(t *testing.T) {
	for _, def := range Presets() {
		parsed, err := ParseDefinition(def.String())
		if err != nil {
			t.Errorf("%s: ParseDefinition failed: %v", def.Name, err)
			continue
		}
		if parsed.String() != def.String() {
			t.Errorf("%s: round trip changed the definition:\n\texpect: %v\n\tactual: %v", def.Name, def, parsed)
		}
	}

	def, err := ParseDefinition(`WIDTH=16 Poly=0x8005 init=0 RefIn=true refout=true xorout=0 check=0xbb3d residue=0x0000 mask=0xffff name="my arc"`)
	if err != nil {
		t.Fatalf("ParseDefinition failed: %v", err)
	}
	if def.Name != "my arc" || def.Width != 16 || !def.RefIn || !def.Poly.Equal(V(0x8005)) || !def.Mask.Equal(V(0xffff)) {
		t.Errorf("wrong parse: %v", def)
	}
	if _, err := NewModel[Word16](def); err != nil {
		t.Errorf("parsed definition does not build: %v", err)
	}

	for _, name := range []string{`my "quoted" crc`, `back\slash`, "tab\there", "ünïcode"} {
		custom := mustPreset("CRC-16/ARC")
		custom.Name = name
		parsed, err := ParseDefinition(custom.String())
		if err != nil {
			t.Errorf("%q: ParseDefinition failed: %v", name, err)
			continue
		}
		if parsed.Name != name {
			t.Errorf("%q: name round trip produced %q", name, parsed.Name)
		}
		if parsed.String() != custom.String() {
			t.Errorf("%q: round trip changed the definition:\n\texpect: %v\n\tactual: %v", name, custom, parsed)
		}
	}
}

func TestParseDefinition_Errors(t *testing.T) {
	var testData = [...]string{
		`poly=0x1021`,
		`width=16`,
		`width=16 poly=0x1021 color=blue`,
		`width=sixteen poly=0x1021`,
		`width=16 poly=0xqq`,
		`width=16 poly=0x1021 refin=maybe`,
		`width=16 poly=0x1021 name="unterminated`,
		`width=16 poly=0x1021 name="bad\q escape"`,
		`width=16 =0x1021`,
	}

	for _, line := range testData {
		if def, err := ParseDefinition(line); err == nil {
			t.Errorf("%s: expected error, got %v", line, def)
		}
	}
}
