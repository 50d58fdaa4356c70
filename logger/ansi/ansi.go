// This file is part of Gopherbeeb.
//
// Gopherbeeb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherbeeb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherbeeb.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi defines the small set of ANSI control sequences used to colour
// log and monitor output.
package ansi

import (
	"fmt"
	"strings"
)

var colours = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
	"normal":  9,
}

// Pens is the table of bright colours to be used for text.
var Pens = map[string]string{}

// DimPens is the table of pastel colours to be used for text.
var DimPens = map[string]string{}

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

func init() {
	for c := range colours {
		if c == "normal" {
			continue
		}
		Pens[c], _ = ColorBuild(c, true)
		DimPens[c], _ = ColorBuild(c, false)
	}
}

// ColorBuild creates the ANSI sequence for a pen colour. Colour names are
// case insensitive.
func ColorBuild(pen string, bright bool) (string, error) {
	c, ok := colours[strings.ToLower(pen)]
	if !ok {
		return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
	}
	target := 3
	if bright {
		target = 9
	}
	return fmt.Sprintf("\033[%d%dm", target, c), nil
}
