// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

// Package xfl implements the ledger's 64-bit decimal float format used to
// encode amounts and timestamps in memo and hook-parameter data.
//
// An XFL packs sign, a base-10 exponent, and a mantissa normalized to
// [10^15, 10^16) into a uint64:
//
//	bit  63     always 0 (negative int64 values are host error sentinels)
//	bit  62     sign (1 = positive)
//	bits 54-61  exponent, biased by +97
//	bits 0-53   mantissa
//
// The canonical zero is the all-zero word.
package xfl

import (
	"encoding/binary"
	"errors"

	"github.com/xahau-rentals/renthook/consts"
)

const (
	minMantissa uint64 = 1_000_000_000_000_000
	maxMantissa uint64 = 9_999_999_999_999_999

	minExponent  = -96
	maxExponent  = 80
	exponentBias = 97

	mantissaMask uint64 = (1 << 54) - 1
	signBit      uint64 = 1 << 62
)

var (
	ErrShortBuffer = errors.New("xfl: buffer shorter than 8 bytes")
	ErrNotAnXFL    = errors.New("xfl: not a valid enclosing number")
	ErrOverflow    = errors.New("xfl: value does not fit in int64")
	ErrOutOfRange  = errors.New("xfl: exponent or mantissa out of range")
)

// Value is a decoded XFL.
type Value struct {
	Mantissa uint64
	Exponent int
	Negative bool
}

// Zero reports whether v is the canonical zero.
func (v Value) Zero() bool {
	return v.Mantissa == 0
}

// Parse decodes a raw enclosing number.
func Parse(raw uint64) (Value, error) {
	if raw == 0 {
		return Value{}, nil
	}
	if raw>>63 != 0 {
		return Value{}, ErrNotAnXFL
	}
	v := Value{
		Mantissa: raw & mantissaMask,
		Exponent: int((raw>>54)&0xFF) - exponentBias,
		Negative: raw&signBit == 0,
	}
	if v.Mantissa < minMantissa || v.Mantissa > maxMantissa ||
		v.Exponent < minExponent || v.Exponent > maxExponent {
		return Value{}, ErrNotAnXFL
	}
	return v, nil
}

// DecodeLE decodes a little-endian XFL, the byte order transaction
// factories write into memo data.
func DecodeLE(b []byte) (Value, error) {
	if len(b) < consts.Uint64Len {
		return Value{}, ErrShortBuffer
	}
	return Parse(binary.LittleEndian.Uint64(b))
}

// Raw returns the enclosing number for v.
func (v Value) Raw() (uint64, error) {
	if v.Zero() {
		return 0, nil
	}
	if v.Mantissa < minMantissa || v.Mantissa > maxMantissa ||
		v.Exponent < minExponent || v.Exponent > maxExponent {
		return 0, ErrOutOfRange
	}
	raw := v.Mantissa | uint64(v.Exponent+exponentBias)<<54
	if !v.Negative {
		raw |= signBit
	}
	return raw, nil
}

// BytesLE returns the little-endian encoding of v.
func (v Value) BytesLE() ([]byte, error) {
	raw, err := v.Raw()
	if err != nil {
		return nil, err
	}
	b := make([]byte, consts.Uint64Len)
	binary.LittleEndian.PutUint64(b, raw)
	return b, nil
}

// Int64 converts v to an integer, truncating toward zero.
func (v Value) Int64() (int64, error) {
	if v.Zero() {
		return 0, nil
	}
	m := v.Mantissa
	switch {
	case v.Exponent > 0:
		for i := 0; i < v.Exponent; i++ {
			if m > (1<<63-1)/10 {
				return 0, ErrOverflow
			}
			m *= 10
		}
	case v.Exponent < 0:
		for i := v.Exponent; i < 0 && m != 0; i++ {
			m /= 10
		}
	}
	if m > 1<<63-1 {
		return 0, ErrOverflow
	}
	if v.Negative {
		return -int64(m), nil
	}
	return int64(m), nil
}

// FromInt64 encodes an integer as a normalized XFL.
func FromInt64(i int64) Value {
	if i == 0 {
		return Value{}
	}
	v := Value{Negative: i < 0}
	if v.Negative {
		v.Mantissa = uint64(-i)
	} else {
		v.Mantissa = uint64(i)
	}
	v.Exponent = 0
	for v.Mantissa < minMantissa {
		v.Mantissa *= 10
		v.Exponent--
	}
	for v.Mantissa > maxMantissa {
		v.Mantissa /= 10
		v.Exponent++
	}
	return v
}
