package bitmap

// View is a run of bits in a canvas buffer: Len bits starting at a bit offset, Stride bits apart.
//
// A View aliases the canvas it was taken from; writes through it mutate the canvas.
type View struct {
	buf    []byte
	offset int
	stride int
	length int
}

func (v View) Len() int {
	return v.length
}

// Bit returns bit i of the view.
func (v View) Bit(i int) bool {
	return getBit(v.buf, v.offset+i*v.stride)
}

// SetBit sets bit i of the view.
func (v View) SetBit(i int, on bool) {
	setBit(v.buf, v.offset+i*v.stride, on)
}

// CopyFrom overwrites the view with the bits of src and returns the number of bits copied,
// which is the minimum of both lengths.
func (v View) CopyFrom(src View) int {
	n := min(v.length, src.length)
	if v.stride == 1 && src.stride == 1 && v.offset&7 == 0 && src.offset&7 == 0 {
		// Byte aligned contiguous runs.
		whole := n / 8
		copy(v.buf[v.offset/8:v.offset/8+whole], src.buf[src.offset/8:src.offset/8+whole])
		for i := whole * 8; i < n; i++ {
			v.SetBit(i, src.Bit(i))
		}
		return n
	}
	for i := 0; i < n; i++ {
		v.SetBit(i, src.Bit(i))
	}
	return n
}

// Fill sets every bit of the view to on.
func (v View) Fill(on bool) {
	for i := 0; i < v.length; i++ {
		v.SetBit(i, on)
	}
}

func getBit(buf []byte, n int) bool {
	return buf[n>>3]&(1<<uint(n&7)) != 0
}

func setBit(buf []byte, n int, on bool) {
	if on {
		buf[n>>3] |= 1 << uint(n&7)
	} else {
		buf[n>>3] &^= 1 << uint(n&7)
	}
}
