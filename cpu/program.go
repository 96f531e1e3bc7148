package cpu

import (
	"encoding/binary"
)

// Image is a parsed program image: a load origin and the words copied
// there in order.
type Image struct {
	Origin uint16
	Words  []uint16
}

// ParseImage interprets data as big-endian 16-bit words. The first word is
// the load origin; the remaining words are the program text and data.
func ParseImage(data []byte) (img *Image, err error) {
	if len(data) == 0 {
		err = ErrImageEmpty
		return
	}
	if len(data)%2 != 0 {
		err = ErrImageTruncated
		return
	}

	words := make([]uint16, 0, len(data)/2-1)
	for at := 2; at < len(data); at += 2 {
		words = append(words, binary.BigEndian.Uint16(data[at:]))
	}

	img = &Image{
		Origin: binary.BigEndian.Uint16(data),
		Words:  words,
	}
	return
}

// LoadImage copies img into memory starting at its origin. The copy is
// all-or-nothing: an image that does not fit leaves memory untouched.
func (mem *Memory) LoadImage(img *Image) (err error) {
	end := int(img.Origin) + len(img.Words)
	if end > MEMORY_SIZE {
		err = ErrImageOverflow
		return
	}

	copy(mem[img.Origin:end], img.Words)
	return
}
