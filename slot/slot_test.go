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

package slot_test

import (
	"sync"
	"testing"

	"github.com/tubeglow/phosphor/slot"
	"github.com/tubeglow/phosphor/test"
)

func TestEmptySlot(t *testing.T) {
	s := slot.New[int]()

	_, ok := s.TryRecv()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, s.Displaced(), 0)
}

func TestPublishAndReceive(t *testing.T) {
	s := slot.New[int]()

	_, dropped := s.Publish(100)
	test.ExpectFailure(t, dropped)

	v, ok := s.TryRecv()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 100)

	// slot is empty again after the receive
	_, ok = s.TryRecv()
	test.ExpectFailure(t, ok)
}

// after N publishes without an intervening receive, exactly the Nth value is
// observed by the receiver.
func TestLastValueWins(t *testing.T) {
	s := slot.New[int]()

	const n = 10
	for i := 1; i <= n; i++ {
		old, dropped := s.Publish(i)
		if i == 1 {
			test.ExpectFailure(t, dropped)
		} else {
			test.ExpectSuccess(t, dropped)
			test.ExpectEquality(t, old, i-1)
		}
	}

	v, ok := s.TryRecv()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, n)
	test.ExpectEquality(t, s.Displaced(), n-1)
}

func TestDisplacedValueReturned(t *testing.T) {
	type payload struct {
		id int
	}

	s := slot.New[*payload]()

	first := &payload{id: 1}
	second := &payload{id: 2}

	old, dropped := s.Publish(first)
	test.ExpectFailure(t, dropped)
	test.ExpectEquality(t, old, nil)

	old, dropped = s.Publish(second)
	test.ExpectSuccess(t, dropped)
	test.ExpectEquality(t, old, first)

	v, ok := s.TryRecv()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, second)
}

// one publisher and one receiver running concurrently. the receiver must
// only ever see values in publication order, never blocking either side.
func TestConcurrentHandoff(t *testing.T) {
	s := slot.New[int]()

	const n = 1000

	var wg sync.WaitGroup
	wg.Add(1)

	var received []int
	go func() {
		defer wg.Done()
		last := 0
		for last < n {
			v, ok := s.TryRecv()
			if !ok {
				continue
			}
			received = append(received, v)
			last = v
		}
	}()

	for i := 1; i <= n; i++ {
		s.Publish(i)
	}
	wg.Wait()

	// published values arrive in order even though some are displaced
	for i := 1; i < len(received); i++ {
		if received[i] <= received[i-1] {
			t.Fatalf("out of order receive: %d after %d", received[i], received[i-1])
		}
	}

	// the final value is never displaced
	test.ExpectEquality(t, received[len(received)-1], n)
}
