// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package distribution

import (
	"math/rand"
	"sync"
	"time"
)

// Source provides uniformly distributed values in the half-open interval [0,1).
//
//go:generate mockgen -source source.go -destination source_mock.go -package distribution
type Source interface {
	Float64() float64
}

// NewSource returns a pseudo-random source seeded with seed. A zero seed
// is replaced by the current time. The returned source must not be shared
// between goroutines; wrap it with NewSyncSource for that.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// syncSource serializes access to a source.
type syncSource struct {
	mu  sync.Mutex
	src Source
}

// NewSyncSource wraps src so that it can be used by several goroutines.
func NewSyncSource(src Source) Source {
	return &syncSource{src: src}
}

func (s *syncSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Float64()
}
