// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package clock provides the timestamp source used when appending notes.
package clock

import (
	"sync"
	"time"

	"github.com/ncruces/go-strftime"
)

// Clock renders the current time through a strftime-style pattern.
type Clock interface {
	NowFormatted(pattern string) string
}

// System reads the local wall-clock time.
type System struct{}

func (System) NowFormatted(pattern string) string {
	return Format(time.Now(), pattern)
}

// Format renders t through a strftime pattern such as "%H:%M - %-m/%-d/%y".
func Format(t time.Time, pattern string) string {
	return strftime.Format(pattern, t)
}

// Fixed always returns the same pre-formatted value.
type Fixed string

func (f Fixed) NowFormatted(string) string {
	return string(f)
}

// Sequence hands out its values in order and keeps repeating the last one
// once exhausted. An empty Sequence returns "".
type Sequence struct {
	mu     sync.Mutex
	values []string
	next   int
}

func NewSequence(values ...string) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) NowFormatted(string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return ""
	}
	i := s.next
	if i >= len(s.values) {
		i = len(s.values) - 1
	} else {
		s.next++
	}
	return s.values[i]
}

// Calls reports how many distinct values have been handed out so far.
func (s *Sequence) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
