package doom

// FrameBuffer is a W×H RGBA pixel buffer. The renderer overwrites every byte
// each frame; callers may reuse one buffer across frames.
type FrameBuffer struct {
	W, H int
	Pix  []byte // len = W*H*4, row-major RGBA
}

// NewFrameBuffer allocates a buffer for the given dimensions.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{W: w, H: h, Pix: make([]byte, w*h*4)}
}

// Resize grows or shrinks the buffer, reusing the allocation when possible.
func (fb *FrameBuffer) Resize(w, h int) {
	if w == fb.W && h == fb.H {
		return
	}
	fb.W, fb.H = w, h
	if need := w * h * 4; cap(fb.Pix) >= need {
		fb.Pix = fb.Pix[:need]
	} else {
		fb.Pix = make([]byte, need)
	}
}

// setRGB writes an opaque packed 0xRRGGBB pixel. Callers stay in range; the
// renderer clamps its row bounds before writing.
func (fb *FrameBuffer) setRGB(x, y int, rgb uint32) {
	i := (y*fb.W + x) * 4
	fb.Pix[i] = byte(rgb >> 16)
	fb.Pix[i+1] = byte(rgb >> 8)
	fb.Pix[i+2] = byte(rgb)
	fb.Pix[i+3] = 0xFF
}

// RGBAt returns the packed 0xRRGGBB value at (x, y), alpha dropped.
// Out-of-range coordinates return 0.
func (fb *FrameBuffer) RGBAt(x, y int) uint32 {
	if x < 0 || x >= fb.W || y < 0 || y >= fb.H {
		return 0
	}
	i := (y*fb.W + x) * 4
	return uint32(fb.Pix[i])<<16 | uint32(fb.Pix[i+1])<<8 | uint32(fb.Pix[i+2])
}
