// Package parcel implements an ordered stream of typed primitives used to move
// objects across a process boundary.
//
// Values are read back in the exact order they were written. The stream carries
// no type information for primitives and no version tag: writer and reader must
// agree on the field order.
package parcel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const nullLength = -1

var (
	ErrShortBuffer    = errors.New("parcel: not enough data")
	ErrInvalidLength  = errors.New("parcel: invalid length")
	ErrUnknownClass   = errors.New("parcel: unknown class")
	ErrNilParcelable  = errors.New("parcel: creator returned nil")
	ErrInvalidString  = errors.New("parcel: string is not valid UTF-8")
	utf16LittleEndian = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

// Parcel is a growable buffer with a read position.
// A Parcel is not safe for concurrent use.
type Parcel struct {
	data []byte
	pos  int
}

// New returns an empty parcel ready for writing
func New() *Parcel {
	return &Parcel{
		data: make([]byte, 0, 256),
	}
}

// FromBytes returns a parcel reading from data, positioned at the start
func FromBytes(data []byte) *Parcel {
	return &Parcel{
		data: data,
	}
}

// Bytes returns the marshalled content of the parcel
func (p *Parcel) Bytes() []byte {
	return p.data
}

// Len is the total size of the parcel in bytes
func (p *Parcel) Len() int {
	return len(p.data)
}

// Remaining is the number of bytes left to read
func (p *Parcel) Remaining() int {
	return len(p.data) - p.pos
}

// Rewind sets the read position back to the start
func (p *Parcel) Rewind() {
	p.pos = 0
}

func (p *Parcel) WriteInt32(value int32) {
	p.data = binary.LittleEndian.AppendUint32(p.data, uint32(value))
}

func (p *Parcel) WriteInt64(value int64) {
	p.data = binary.LittleEndian.AppendUint64(p.data, uint64(value))
}

// WriteBool writes 1 for true and 0 for false, as an int32
func (p *Parcel) WriteBool(value bool) {
	if value {
		p.WriteInt32(1)
		return
	}
	p.WriteInt32(0)
}

// WriteString writes a non-null string. The string must be valid UTF-8: nothing is written otherwise.
func (p *Parcel) WriteString(value string) error {
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: %q", ErrInvalidString, value)
	}
	encoded, err := utf16LittleEndian.NewEncoder().Bytes([]byte(value))
	if err != nil {
		return fmt.Errorf("parcel: cannot encode string: %w", err)
	}
	// count of UTF-16 units, the units, then a zero terminator padded to 4 bytes
	p.WriteInt32(int32(len(encoded) / 2))
	p.data = append(p.data, encoded...)
	p.data = append(p.data, 0, 0)
	p.pad()
	return nil
}

// WriteNullString writes the null string marker
func (p *Parcel) WriteNullString() {
	p.WriteInt32(nullLength)
}

func (p *Parcel) pad() {
	for len(p.data)%4 != 0 {
		p.data = append(p.data, 0)
	}
}

func (p *Parcel) next(size int) ([]byte, error) {
	if size < 0 || p.Remaining() < size {
		return nil, fmt.Errorf("%w: need %d bytes at position %d, %d left", ErrShortBuffer, size, p.pos, p.Remaining())
	}
	chunk := p.data[p.pos : p.pos+size]
	p.pos += size
	return chunk, nil
}

func (p *Parcel) ReadInt32() (int32, error) {
	chunk, err := p.next(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(chunk)), nil
}

func (p *Parcel) ReadInt64() (int64, error) {
	chunk, err := p.next(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(chunk)), nil
}

// ReadBool reads an int32 and returns true when it equals 1
func (p *Parcel) ReadBool() (bool, error) {
	value, err := p.ReadInt32()
	if err != nil {
		return false, err
	}
	return value == 1, nil
}

// ReadString returns the next string. A null string is returned as empty.
func (p *Parcel) ReadString() (string, error) {
	value, _, err := p.ReadNullableString()
	return value, err
}

// ReadNullableString returns the next string and false if it was written as null
func (p *Parcel) ReadNullableString() (string, bool, error) {
	length, err := p.ReadInt32()
	if err != nil {
		return "", false, err
	}
	if length == nullLength {
		return "", false, nil
	}
	if length < 0 {
		return "", false, fmt.Errorf("%w: string of %d units", ErrInvalidLength, length)
	}
	size := int(length)*2 + 2
	if padding := size % 4; padding != 0 {
		size += 4 - padding
	}
	chunk, err := p.next(size)
	if err != nil {
		return "", false, err
	}
	decoded, err := utf16LittleEndian.NewDecoder().Bytes(chunk[:int(length)*2])
	if err != nil {
		return "", false, fmt.Errorf("parcel: cannot decode string: %w", err)
	}
	return string(decoded), true, nil
}
