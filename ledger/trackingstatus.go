// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// TrackingStatus - result of a transaction status query
type TrackingStatus int

// possible status values
const (
	TrackingUnknown   TrackingStatus = iota
	TrackingConfirmed TrackingStatus = iota
)

// String - convert the tracking value for printf
func (ts TrackingStatus) String() string {
	switch ts {
	case TrackingUnknown:
		return "Unknown"
	case TrackingConfirmed:
		return "Confirmed"
	default:
		return "*Unknown*"
	}
}

// MarshalText - convert the tracking value for JSON
func (ts TrackingStatus) MarshalText() ([]byte, error) {
	buffer := []byte(ts.String())
	return buffer, nil
}

// UnmarshalText - convert the tracking value from JSON to enumeration
func (ts *TrackingStatus) UnmarshalText(s []byte) error {
	switch string(s) {
	case "Confirmed":
		*ts = TrackingConfirmed
	default:
		*ts = TrackingUnknown
	}
	return nil
}
