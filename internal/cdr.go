package internal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// errShortPayload is returned when a CDR payload ends before a field.
var errShortPayload = errors.New("payload too short")

const cdrHeaderLen = 4

// cdrDecoder reads an XCDR1-encoded ROS2 message payload. The 4-byte
// encapsulation header selects the byte order; alignment is relative to the
// first byte after the header.
type cdrDecoder struct {
	buf   []byte
	off   int
	order binary.ByteOrder
}

func newCDRDecoder(raw []byte) (*cdrDecoder, error) {
	if len(raw) < cdrHeaderLen {
		return nil, fmt.Errorf("%w: missing encapsulation header", errShortPayload)
	}
	var order binary.ByteOrder
	switch raw[1] {
	case 0x00:
		order = binary.BigEndian
	case 0x01:
		order = binary.LittleEndian
	default:
		return nil, fmt.Errorf("unknown CDR representation identifier: %#x%02x", raw[0], raw[1])
	}
	return &cdrDecoder{buf: raw[cdrHeaderLen:], order: order}, nil
}

func (d *cdrDecoder) align(n int) {
	if rem := d.off % n; rem != 0 {
		d.off += n - rem
	}
}

func (d *cdrDecoder) need(n int) error {
	if len(d.buf)-d.off < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", errShortPayload, n, d.off, len(d.buf)-d.off)
	}
	return nil
}

func (d *cdrDecoder) uint32() (uint32, error) {
	d.align(4)
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := d.order.Uint32(d.buf[d.off:])
	d.off += 4
	return v, nil
}

func (d *cdrDecoder) int32() (int32, error) {
	v, err := d.uint32()
	return int32(v), err
}

func (d *cdrDecoder) float64() (float64, error) {
	d.align(8)
	if err := d.need(8); err != nil {
		return 0, err
	}
	v := math.Float64frombits(d.order.Uint64(d.buf[d.off:]))
	d.off += 8
	return v, nil
}

// float64Array fills dst from a fixed-size float64 array field.
func (d *cdrDecoder) float64Array(dst []float64) error {
	for i := range dst {
		v, err := d.float64()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// string reads a CDR string: uint32 length including the trailing NUL,
// followed by the bytes.
func (d *cdrDecoder) string() (string, error) {
	length, err := d.uint32()
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	if err := d.need(int(length)); err != nil {
		return "", err
	}
	s := string(d.buf[d.off : d.off+int(length)-1])
	d.off += int(length)
	return s, nil
}
