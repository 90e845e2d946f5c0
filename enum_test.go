package crc

import (
	"testing"
)

func TestEnums_Parse(t *testing.T) {
	type testRow struct {
		input  string
		expect string
		ok     bool
	}

	t.Run("Strategy", func(t *testing.T) {
		for _, row := range []testRow{
			{"software", "software", true},
			{"table", "software", true},
			{"hardware-crc32c", "hardware-crc32c", true},
			{"SIMD", "", false},
		} {
			var s Strategy
			err := s.Parse(row.input)
			if row.ok != (err == nil) || (row.ok && s.String() != row.expect) {
				t.Errorf("Parse(%q): got %v, %v", row.input, s, err)
			}
		}
		if !HardwareCRC32Strategy.IsHardware() || SoftwareStrategy.IsHardware() {
			t.Error("IsHardware is wrong")
		}
		if s := HardwareCRC32Strategy.GoString(); s != "HardwareCRC32Strategy" {
			t.Errorf("GoString: got %s", s)
		}
	})

	t.Run("Format", func(t *testing.T) {
		for _, row := range []testRow{
			{"hex", "hex", true},
			{"default", "hex", true},
			{"upper", "hex-upper", true},
			{"hex-upper", "hex-upper", true},
			{"dec", "decimal", true},
			{"octal", "", false},
		} {
			var f Format
			err := f.Parse(row.input)
			if row.ok != (err == nil) || (row.ok && f.String() != row.expect) {
				t.Errorf("Parse(%q): got %v, %v", row.input, f, err)
			}
		}
	})

	t.Run("BufferBits", func(t *testing.T) {
		for _, row := range []testRow{
			{"default", "default", true},
			{"8", "8", true},
			{"20", "20", true},
			{"7", "", false},
			{"21", "", false},
			{"lots", "", false},
		} {
			var bb BufferBits
			err := bb.Parse(row.input)
			if row.ok != (err == nil) || (row.ok && bb.String() != row.expect) {
				t.Errorf("Parse(%q): got %v, %v", row.input, bb, err)
			}
		}
		if n := BufferBits(10).Size(); n != 1024 {
			t.Errorf("Size: expected 1024, got %d", n)
		}
		if n := DefaultBufferBits.Size(); n != 65536 {
			t.Errorf("default Size: expected 65536, got %d", n)
		}
	})
}

func TestEnums_String(t *testing.T) {
	if s := FailedState.String(); s != "failed" {
		t.Errorf("FailedState.String: got %s", s)
	}
	if s := AccumulatingState.GoString(); s != "AccumulatingState" {
		t.Errorf("AccumulatingState.GoString: got %s", s)
	}
	if s := CacheFlushEvent.String(); s != "cache-flush" {
		t.Errorf("CacheFlushEvent.String: got %s", s)
	}
	if s := UpperHexFormat.GoString(); s != "UpperHexFormat" {
		t.Errorf("UpperHexFormat.GoString: got %s", s)
	}
	if s := BufferBits(12).GoString(); s != "BufferBits(12)" {
		t.Errorf("BufferBits.GoString: got %s", s)
	}
}
