package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

func TestRescoreBatch(t *testing.T) {
	tests := []struct {
		name       string
		ids        []string
		workers    int
		failing    map[string]bool
		wantScored int
		wantFailed int
	}{
		{
			name:       "all succeed",
			ids:        []string{"a", "b", "c", "d"},
			workers:    2,
			wantScored: 4,
		},
		{
			name:       "failures counted separately",
			ids:        []string{"a", "b", "c", "d"},
			workers:    2,
			failing:    map[string]bool{"b": true, "d": true},
			wantScored: 2,
			wantFailed: 2,
		},
		{
			name:       "more workers than jobs",
			ids:        []string{"a"},
			workers:    8,
			wantScored: 1,
		},
		{
			name:       "zero workers clamps to one",
			ids:        []string{"a", "b"},
			workers:    0,
			wantScored: 2,
		},
		{
			name:    "empty batch",
			ids:     nil,
			workers: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mu sync.Mutex
			seen := make(map[string]int)

			scored, failed := rescoreBatch(tt.ids, tt.workers, func(_ context.Context, companyID string) error {
				mu.Lock()
				seen[companyID]++
				mu.Unlock()
				if tt.failing[companyID] {
					return fmt.Errorf("load inputs: company %s not found", companyID)
				}
				return nil
			})

			if scored != tt.wantScored {
				t.Errorf("expected %d scored, got %d", tt.wantScored, scored)
			}
			if failed != tt.wantFailed {
				t.Errorf("expected %d failed, got %d", tt.wantFailed, failed)
			}
			for _, id := range tt.ids {
				if seen[id] != 1 {
					t.Errorf("company %s re-scored %d times, expected exactly once", id, seen[id])
				}
			}
		})
	}
}

func TestRescoreBatchBoundedConcurrency(t *testing.T) {
	const workers = 3

	ids := make([]string, 50)
	for i := range ids {
		ids[i] = fmt.Sprintf("company-%d", i)
	}

	var active, peak int64
	scored, _ := rescoreBatch(ids, workers, func(_ context.Context, _ string) error {
		n := atomic.AddInt64(&active, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
				break
			}
		}
		atomic.AddInt64(&active, -1)
		return nil
	})

	if scored != len(ids) {
		t.Errorf("expected %d scored, got %d", len(ids), scored)
	}
	if p := atomic.LoadInt64(&peak); p > workers {
		t.Errorf("observed %d concurrent re-scores, pool bounded at %d", p, workers)
	}
}
