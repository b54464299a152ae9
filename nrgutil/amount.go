// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nrgutil

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// AmountUnit describes a method of converting an Amount to something
// other than the base unit.  The value of the AmountUnit is the exponent
// component of the decadic multiple to convert from an amount in NRG to an
// amount counted in units.
type AmountUnit int

// These constants define various units used when describing a monetary
// amount.
const (
	AmountMegaNRG  AmountUnit = 6
	AmountKiloNRG  AmountUnit = 3
	AmountNRG      AmountUnit = 0
	AmountMilliNRG AmountUnit = -3
	AmountMicroNRG AmountUnit = -6
	AmountWei      AmountUnit = -8
)

// String returns the unit as a string.  For recognized units, the SI
// prefix is used, or "Wei" for the base unit.  For all unrecognized
// units, "1eN NRG" is returned, where N is the AmountUnit.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaNRG:
		return "MNRG"
	case AmountKiloNRG:
		return "kNRG"
	case AmountNRG:
		return "NRG"
	case AmountMilliNRG:
		return "mNRG"
	case AmountMicroNRG:
		return "μNRG"
	case AmountWei:
		return "Wei"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " NRG"
	}
}

// Amount represents the base monetary unit. A single Amount is equal to 1e-8
// of a coin.
type Amount int64

// round converts a floating point number, which may or may not be representable
// as an integer, to the Amount integer type by rounding to the nearest integer.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing
// some value in NRG.  NewAmount errors if f is NaN or +-Infinity.
func NewAmount(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("invalid NRG amount")
	}

	return round(f * WeiPerNRG), nil
}

// ToUnit converts a monetary amount counted in base units to a
// floating point value representing an amount in the unit.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToNRG is the equivalent of calling ToUnit with AmountNRG.
func (a Amount) ToNRG() float64 {
	return a.ToUnit(AmountNRG)
}

// Format formats a monetary amount counted in base units as a
// string for a given unit.
func (a Amount) Format(u AmountUnit) string {
	units := " " + u.String()
	return strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64) + units
}

// String is the equivalent of calling Format with AmountNRG.
func (a Amount) String() string {
	return a.Format(AmountNRG)
}
