// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockval

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var ErrEmptyDataset = errors.New("dataset contains no records")

// MissingFieldError reports an absent or non-finite record field.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d: missing field %q", e.Index, e.Field)
}

type InvalidFieldError struct {
	Index  int
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("record %d: invalid field %q: %s", e.Index, e.Field, e.Reason)
}

type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate record key %q", e.Key)
}

func validateValues(index int, priceField string, price, volume float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return &MissingFieldError{Index: index, Field: priceField}
	}
	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		return &MissingFieldError{Index: index, Field: "volume"}
	}
	if volume < 0 {
		return &InvalidFieldError{Index: index, Field: "volume", Reason: "negative value"}
	}
	return nil
}
