// SPDX-License-Identifier: MIT
// Package core_test checks that snapshots stay consistent under concurrent writers.

package core_test

import (
	"sync"
	"testing"
)

const (
	NReaders = 16
	NRounds  = 200
)

// TestGraph_ConcurrentSnapshots runs readers against a writer that always stores
// uniform holonomy batches; a reader must never observe a mixed batch.
func TestGraph_ConcurrentSnapshots(t *testing.T) {
	g := NewTriangle(t)

	var wg sync.WaitGroup
	torn := make(chan struct{}, NReaders)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for r := 0; r < NRounds; r++ {
			v := complex(float64(r), 0)
			_ = g.SetHolonomies([]complex128{v, v, v})
		}
	}()

	for i := 0; i < NReaders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := 0; r < NRounds; r++ {
				hs := g.Holonomies()
				if hs[0] != hs[1] || hs[1] != hs[2] {
					torn <- struct{}{}
					return
				}
			}
		}()
	}
	wg.Wait()
	close(torn)

	for range torn {
		t.Fatal("observed a partially applied holonomy batch")
	}
}
