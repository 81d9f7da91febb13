// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import "github.com/pkg/errors"

// ErrZeroSizedSurface is returned if the surface leaves no room for the plot area.
var ErrZeroSizedSurface = errors.New("surface has no drawable area")
