// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nrgutil

const (
	// WeiPerNRG is the number of base units in one coin (1 NRG).
	WeiPerNRG = 1e8

	// MaxAmount is the maximum transaction amount allowed in base units.
	MaxAmount = 21e6 * 100 * WeiPerNRG

	// Cent is 0.01 NRG in base units.
	Cent = WeiPerNRG / 100
)
