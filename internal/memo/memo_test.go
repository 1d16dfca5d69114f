package memo

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type query struct {
	Generation uint64
	Semester   string
	Values     []string
}

func TestCache_RecomputesOnlyOnChange(t *testing.T) {
	calls := 0
	c := New(func(q query) int {
		calls++
		return len(q.Semester) + len(q.Values)
	})

	assert.Equal(t, 11, c.Get(query{Semester: "Spring 2025"}))
	assert.Equal(t, 11, c.Get(query{Semester: "Spring 2025"}))
	assert.Equal(t, 1, calls)

	assert.Equal(t, 12, c.Get(query{Semester: "Spring 2025", Values: []string{"x"}}))
	assert.Equal(t, 2, calls)

	c.Get(query{Generation: 1, Semester: "Spring 2025", Values: []string{"x"}})
	assert.Equal(t, 3, c.Misses())
}

func TestCache_LastInputWins(t *testing.T) {
	c := New(func(s string) string { return s + "!" })
	c.Get("a")
	c.Get("b")
	assert.Equal(t, "a!", c.Get("a"))
	assert.Equal(t, 3, c.Misses())
}

func TestCache_Invalidate(t *testing.T) {
	c := New(func(n int) int { return n * 2 })
	c.Get(2)
	c.Invalidate()
	assert.Equal(t, 4, c.Get(2))
	assert.Equal(t, 2, c.Misses())
}

func TestCache_UnhashableInputAlwaysRecomputes(t *testing.T) {
	c := New(func(f func() int) int { return f() })
	c.Get(func() int { return 1 })
	c.Get(func() int { return 1 })
	assert.Equal(t, 2, c.Misses())
}

func TestCache_Concurrent(t *testing.T) {
	c := New(func(n int) int { return n + 1 })
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.Equal(t, i%3+1, c.Get(i%3))
		}(i)
	}
	wg.Wait()
}
