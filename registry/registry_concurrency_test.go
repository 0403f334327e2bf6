/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package registry_test

import (
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/clsx/apis"
	"dirpx.dev/clsx/registry"
)

// TestConcurrentLookupAndRegister verifies that single registry operations
// are race-free while readers and writers run side by side.
func TestConcurrentLookupAndRegister(t *testing.T) {
	reg := registry.New()

	names := []string{"T0", "T1", "T2", "T3", "T4", "T5", "T6", "T7", "T8", "T9"}
	for _, n := range names {
		if err := reg.Register(n, &apis.Class{Name: n}); err != nil {
			t.Fatalf("register %s: %v", n, err)
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				n := names[i%len(names)]
				if c, ok := reg.Lookup(n); !ok || c == nil || c.Name != n {
					t.Errorf("lookup failed for %s: ok=%v", n, ok)
					return
				}
			}
		}()
	}

	// Writers re-register the same names with fresh class objects.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				n := names[i%len(names)]
				if err := reg.Register(n, &apis.Class{Name: n}); err != nil {
					t.Errorf("register %s: %v", n, err)
					return
				}
				_ = reg.Entries()
			}
		}()
	}

	wg.Wait()

	if got := reg.Count(); got != len(names) {
		t.Fatalf("Count() = %d, want %d", got, len(names))
	}
}
