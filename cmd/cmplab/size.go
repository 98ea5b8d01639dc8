// Copyright 2026, The cmplab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"strings"

	"github.com/dsnet/golib/unitconv"
)

// formatSize formats n using IEC prefixes, such as 1.5Ki.
func formatSize(n int64) string {
	s := unitconv.FormatPrefix(float64(n), unitconv.IEC, 2)
	return strings.Replace(s, ".00", "", -1)
}
