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

// Package slot implements a single-slot, non-blocking handoff between one
// publishing goroutine and one receiving goroutine.
//
// The slot is never a queue. It holds at most the newest unconsumed value;
// publishing into an occupied slot displaces the old value rather than
// blocking. A value that is displaced before the receiver collects it is
// returned to the publisher, which matters when the value owns resources
// outside the garbage collector.
//
// A slow receiver therefore always observes the most recently published
// value. This is the intended backpressure mechanism for a live video
// pipeline: losing a stale frame is preferred over adding latency.
package slot

import (
	"sync"
)

// Slot is the preferred method of communication between the stages of the
// capture pipeline. The zero value is not usable; create instances with the
// New() function.
type Slot[T any] struct {
	crit     sync.Mutex
	value    T
	occupied bool

	// number of values displaced before being received. useful when
	// judging whether the receiving side is keeping up
	displaced uint64
}

// New is the preferred method of initialisation of the Slot type.
func New[T any]() *Slot[T] {
	return &Slot[T]{}
}

// Publish places a value in the slot, never blocking. If the slot still
// holds a value that has not been received, that value is displaced and
// returned with a true flag. The publisher is responsible for releasing any
// non-memory resources held by a displaced value.
func (s *Slot[T]) Publish(v T) (T, bool) {
	s.crit.Lock()
	defer s.crit.Unlock()

	old := s.value
	dropped := s.occupied

	s.value = v
	s.occupied = true

	if dropped {
		s.displaced++
	} else {
		var zero T
		old = zero
	}

	return old, dropped
}

// TryRecv collects the value currently in the slot, never blocking. The
// second return value is false if the slot is empty.
func (s *Slot[T]) TryRecv() (T, bool) {
	s.crit.Lock()
	defer s.crit.Unlock()

	if !s.occupied {
		var zero T
		return zero, false
	}

	v := s.value
	var zero T
	s.value = zero
	s.occupied = false

	return v, true
}

// Displaced returns the number of values that were overwritten before being
// received.
func (s *Slot[T]) Displaced() uint64 {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.displaced
}
