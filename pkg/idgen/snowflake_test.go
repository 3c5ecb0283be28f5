package idgen

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIDUnique(t *testing.T) {
	Init(1)

	const n = 10000
	seen := make(map[int64]struct{}, n)
	for i := 0; i < n; i++ {
		id := NextID()
		_, dup := seen[id]
		assert.False(t, dup, "重复ID: %d", id)
		seen[id] = struct{}{}
	}
}

func TestNextIDUniqueConcurrent(t *testing.T) {
	Init(1)

	const goroutines = 8
	const perGoroutine = 2000

	var mu sync.Mutex
	seen := make(map[int64]struct{}, goroutines*perGoroutine)
	var wg sync.WaitGroup

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]int64, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				ids = append(ids, NextID())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				_, dup := seen[id]
				assert.False(t, dup, "重复ID: %d", id)
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()
}

func TestGenerateTransactionCode(t *testing.T) {
	Init(1)

	code := GenerateTransactionCode()
	assert.True(t, strings.HasPrefix(code, "TRX"))
	assert.Contains(t, code, "-")

	// 连续生成不重复（交易码唯一性由雪花ID部分保证）
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		c := GenerateTransactionCode()
		_, dup := seen[c]
		assert.False(t, dup, "重复交易码: %s", c)
		seen[c] = struct{}{}
	}
}
