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
	"errors"
	"testing"

	"github.com/tubeglow/phosphor/capture"
	"github.com/tubeglow/phosphor/test"
)

func TestPollLoopStops(t *testing.T) {
	var stop capture.StopSignal

	// raise the stop signal from inside a step. the loop must terminate
	// without calling step again
	steps := 0
	err := pollLoop(&stop, func() (bool, error) {
		steps++
		if steps == 5 {
			stop.Stop()
		}
		return true, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, steps, 5)
}

func TestPollLoopNoWorkAfterStop(t *testing.T) {
	stop := &capture.StopSignal{}
	stop.Stop()

	err := pollLoop(stop, func() (bool, error) {
		t.Fatal("step called after stop signal")
		return false, nil
	})
	test.ExpectSuccess(t, err)
}

func TestReaderEndOfStream(t *testing.T) {
	var stop capture.StopSignal

	// the capture stream ending is a natural exit for the reader, not a
	// fatal error, and must not raise the stop signal. the decode loop
	// keeps serving the last frame until the owner ends the run
	err := readerExit(pollLoop(&stop, func() (bool, error) {
		return false, errStreamEnded
	}))
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, stop.Stopped())

	// any other reader failure is fatal
	failure := errors.New("device unplugged")
	err = readerExit(pollLoop(&stop, func() (bool, error) {
		return false, failure
	}))
	test.ExpectSuccess(t, errors.Is(err, failure))
}

func TestPollLoopErrorPropagation(t *testing.T) {
	var stop capture.StopSignal
	failure := errors.New("device unplugged")

	steps := 0
	err := pollLoop(&stop, func() (bool, error) {
		steps++
		if steps == 3 {
			return false, failure
		}
		return false, nil
	})
	test.ExpectEquality(t, steps, 3)
	test.ExpectSuccess(t, errors.Is(err, failure))
}
