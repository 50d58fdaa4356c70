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

package environment_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherbeeb/environment"
	"github.com/jetsetilly/gopherbeeb/hardware/preferences"
	"github.com/jetsetilly/gopherbeeb/logger"
	"github.com/jetsetilly/gopherbeeb/test"
)

type clock struct{}

func (clock) Cycles() uint64 {
	return 0
}

func TestPermission(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	main, err := environment.NewEnvironment(environment.MainEmulation, clock{}, p)
	test.DemandSuccess(t, err)
	other, err := environment.NewEnvironment("thumbnail", clock{}, p)
	test.DemandSuccess(t, err)

	var perm logger.Permission = main
	test.ExpectSuccess(t, perm.AllowLogging())
	perm = other
	test.ExpectFailure(t, perm.AllowLogging())

	test.ExpectSuccess(t, other.IsEmulation("thumbnail"))

	// environments share preferences
	test.ExpectSuccess(t, main.Prefs.Model.Set("master"))
	test.ExpectEquality(t, other.Prefs.Model.String(), "master")

	other.Normalise()
	test.ExpectEquality(t, main.Prefs.Model.String(), "B")
}
