package core

import "testing"

func TestColorRoundTrip(t *testing.T) {
	c := NewColor(0x12, 0x34, 0x56)
	r, g, b := c.RGB()
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("RGB() = (%x, %x, %x), expected (12, 34, 56)", r, g, b)
	}
	if !c.IsSet() {
		t.Error("NewColor should be marked as set")
	}
	if c.Hex() != "#123456" {
		t.Errorf("Hex() = %q, expected #123456", c.Hex())
	}
}

func TestColorDefault(t *testing.T) {
	if ColorDefault.IsSet() {
		t.Error("ColorDefault should not carry an RGB value")
	}
	if ColorDefault.Darken() != ColorDefault {
		t.Error("Darken of default must stay default")
	}
}

func TestColorDarken(t *testing.T) {
	c := NewColor(200, 100, 51)
	r, g, b := c.Darken().RGB()
	if r != 100 || g != 50 || b != 25 {
		t.Errorf("Darken() = (%d, %d, %d), expected (100, 50, 25)", r, g, b)
	}
}

func TestFromRGB(t *testing.T) {
	c := FromRGB(0xAABBCC)
	if c.Hex() != "#aabbcc" {
		t.Errorf("FromRGB hex = %q, expected #aabbcc", c.Hex())
	}
}
