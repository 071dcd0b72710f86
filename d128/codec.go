package d128

import (
	bin "encoding/binary"

	binary "github.com/gagliardetto/binary"
	"github.com/krazyTry/vyper-go/u128"
)

// Size is the serialized width of a Decimal.
const Size = 16

const (
	scaleShift = 16
	scaleMask  = 0x00ff0000
	signMask   = 0x80000000
)

// Serialize returns the 16 byte form: flags, lo, mid, hi, each a little
// endian uint32. The flags carry the scale in bits 16..23 and the sign in bit 31.
func (d Decimal) Serialize() [Size]byte {
	var out [Size]byte

	m := d.Mantissa()
	flags := uint32(d.Scale()) << scaleShift
	if m.Sign() < 0 {
		flags |= signMask
		m.Neg(m)
	}

	// |m| < 2^96 always holds here
	v, _ := u128.FromBig(m)
	bin.LittleEndian.PutUint32(out[0:4], flags)
	bin.LittleEndian.PutUint32(out[4:8], uint32(v.Lo))
	bin.LittleEndian.PutUint32(out[8:12], uint32(v.Lo>>32))
	bin.LittleEndian.PutUint32(out[12:16], uint32(v.Hi))
	return out
}

// Deserialize is the inverse of Serialize.
func Deserialize(b [Size]byte) (Decimal, error) {
	flags := bin.LittleEndian.Uint32(b[0:4])
	scale := int32((flags & scaleMask) >> scaleShift)
	if scale > MaxScale {
		return Decimal{}, Error.Wrap(ErrInvalidEncoding)
	}

	v := binary.NewUint128LittleEndian()
	v.Lo = uint64(bin.LittleEndian.Uint32(b[4:8])) | uint64(bin.LittleEndian.Uint32(b[8:12]))<<32
	v.Hi = uint64(bin.LittleEndian.Uint32(b[12:16]))

	m := u128.ToBig(*v)
	if flags&signMask != 0 {
		m.Neg(m)
	}
	return fit(m, scale)
}

// DeserializeBytes is Deserialize over a slice that must be exactly Size long.
func DeserializeBytes(b []byte) (Decimal, error) {
	if len(b) != Size {
		return Decimal{}, Error.New("%s: want %d bytes, got %d", ErrInvalidEncoding, Size, len(b))
	}
	var a [Size]byte
	copy(a[:], b)
	return Deserialize(a)
}

func (d Decimal) MarshalWithEncoder(encoder *binary.Encoder) error {
	b := d.Serialize()
	return encoder.WriteBytes(b[:], false)
}

func (d *Decimal) UnmarshalWithDecoder(decoder *binary.Decoder) error {
	b, err := decoder.ReadNBytes(Size)
	if err != nil {
		return err
	}
	v, err := DeserializeBytes(b)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Decimal) UnmarshalText(text []byte) error {
	v, err := NewFromString(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
