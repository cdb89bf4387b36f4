package raster

import (
	"encoding/binary"
	"fmt"
)

// bmpMagic is the two-byte 'BM' signature every Windows BMP file starts with.
const bmpMagic = 0x4D42

// DecodeBMP parses a 24-bit uncompressed Windows BMP from raw bytes and
// returns the decoded Texture. Rows are stored bottom-up in the file and
// are preserved bottom-up in the Texture, matching the framebuffer's own
// bottom-up presentation convention: v=0 is the bottom row.
//
// Only the fields the rasterizer needs are validated: the 'BM' magic, a
// bits-per-pixel of 24, and that the declared pixel data fits in raw.
// Anything else (compression, color planes, DPI) is ignored, mirroring the
// source decoder which reads exactly these offsets and nothing more.
func DecodeBMP(raw []byte) (*Texture, error) {
	if len(raw) < 54 {
		return nil, fmt.Errorf("raster: bmp too short: %d bytes", len(raw))
	}
	magic := binary.LittleEndian.Uint16(raw[0:2])
	if magic != bmpMagic {
		return nil, fmt.Errorf("raster: bad bmp magic %#04x", magic)
	}
	pixelOffset := binary.LittleEndian.Uint32(raw[10:14])
	width := int32(binary.LittleEndian.Uint32(raw[18:22]))
	height := int32(binary.LittleEndian.Uint32(raw[22:26]))
	bpp := binary.LittleEndian.Uint16(raw[28:30])
	if bpp != 24 {
		return nil, fmt.Errorf("raster: bmp bpp=%d, only 24-bit supported", bpp)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: bmp has non-positive dimensions %dx%d", width, height)
	}
	rowSize := uint32(width) * 3
	padding := (4 - rowSize%4) % 4
	stride := rowSize + padding
	end := int(pixelOffset) + int(stride)*int(height)
	if end > len(raw) {
		return nil, fmt.Errorf("raster: bmp pixel data (%d bytes at offset %d) exceeds file size %d", int(stride)*int(height), pixelOffset, len(raw))
	}
	pixels := make([]byte, int(rowSize)*int(height))
	for y := 0; y < int(height); y++ {
		src := raw[int(pixelOffset)+y*int(stride):]
		dst := pixels[y*int(rowSize):]
		copy(dst[:rowSize], src[:rowSize])
	}
	return &Texture{Width: uint32(width), Height: uint32(height), Pixels: pixels}, nil
}

// EncodeBMP writes pixels (row-major, bottom-up, 3 bytes per pixel, any
// channel order) as a minimal 24-bit uncompressed BMP, padding each row to
// a 4-byte stride as the BMP format requires whenever width*3 isn't already
// a multiple of 4. [DecodeBMP] strips that same padding back out, so
// decode(encode(pixels,w,h)) == pixels for every width, not just
// 4-aligned ones.
func EncodeBMP(pixels []byte, width, height uint32) ([]byte, error) {
	want := int(width) * int(height) * 3
	if len(pixels) != want {
		return nil, fmt.Errorf("raster: encode bmp: got %d pixel bytes, want %d for %dx%d", len(pixels), want, width, height)
	}
	rowSize := width * 3
	padding := (4 - rowSize%4) % 4
	stride := rowSize + padding
	pixelOffset := uint32(54)
	fileSize := pixelOffset + stride*height

	buf := make([]byte, fileSize)
	binary.LittleEndian.PutUint16(buf[0:2], bmpMagic)
	binary.LittleEndian.PutUint32(buf[2:6], fileSize)
	binary.LittleEndian.PutUint32(buf[10:14], pixelOffset)
	binary.LittleEndian.PutUint32(buf[14:18], 40) // BITMAPINFOHEADER size
	binary.LittleEndian.PutUint32(buf[18:22], width)
	binary.LittleEndian.PutUint32(buf[22:26], height)
	binary.LittleEndian.PutUint16(buf[26:28], 1)  // color planes
	binary.LittleEndian.PutUint16(buf[28:30], 24) // bpp
	binary.LittleEndian.PutUint32(buf[34:38], stride*height)

	for y := uint32(0); y < height; y++ {
		src := pixels[y*rowSize : (y+1)*rowSize]
		dst := buf[pixelOffset+y*stride:]
		copy(dst, src)
	}
	return buf, nil
}
