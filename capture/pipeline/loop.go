// This file is part of Phosphor.
//
// Phosphor is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Phosphor is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Phosphor.  If not, see <https://www.gnu.org/licenses/>.

package pipeline

import (
	"runtime"

	"github.com/tubeglow/phosphor/capture"
)

// pollLoop runs step until the stop signal is raised or step returns an
// error. The stop signal is checked before every call to step so no work is
// started after the signal is observed.
//
// step returns true if it did useful work. An idle iteration yields the
// processor rather than sleeping; both pipeline loops are paced by the
// device and a fixed sleep would only add latency.
func pollLoop(stop *capture.StopSignal, step func() (bool, error)) error {
	for !stop.Stopped() {
		worked, err := step()
		if err != nil {
			return err
		}
		if !worked {
			runtime.Gosched()
		}
	}
	return nil
}
