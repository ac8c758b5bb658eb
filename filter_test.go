package wildcard

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// Filter / Reject / Any
// ---------------------------------------------------------------------------

func TestFilterBasic(t *testing.T) {
	p := New("*.log")

	got := p.Filter([]string{"src/main.go", "debug.log", "error.LOG", "README.md"})

	assert.Equal(t, []string{"debug.log", "error.LOG"}, got)
}

func TestRejectBasic(t *testing.T) {
	p := New("*.log")

	got := p.Reject([]string{"src/main.go", "debug.log", "error.log", "README.md"})

	assert.Equal(t, []string{"src/main.go", "README.md"}, got)
}

func TestFilterNothingMatches(t *testing.T) {
	got := New("*.log").Filter([]string{"a.txt", "b.txt"})
	assert.Empty(t, got)
}

func TestFilterAllMatch(t *testing.T) {
	input := []string{"a.txt", "", "c.txt"}
	assert.Equal(t, input, New("*").Filter(input))
	assert.Empty(t, New("*").Reject(input))
}

func TestFilterEmptyInput(t *testing.T) {
	p := New("*")

	assert.Nil(t, p.Filter([]string{}))
	assert.Nil(t, p.Reject(nil))
	assert.Nil(t, p.FilterParallel([]string{}))
}

func TestFilterPreservesOrder(t *testing.T) {
	got := New("?.txt").Filter([]string{"z.txt", "a.txt", "mm.txt", "debug.log", "b.txt"})
	assert.Equal(t, []string{"z.txt", "a.txt", "b.txt"}, got)
}

func TestAny(t *testing.T) {
	p := New("ab?")

	assert.True(t, p.Any([]string{"x", "abc"}))
	assert.False(t, p.Any([]string{"x", "ab", "abcd"}))
	assert.False(t, p.Any(nil))
}

// ---------------------------------------------------------------------------
// FilterParallel
// ---------------------------------------------------------------------------

func TestFilterParallelBasic(t *testing.T) {
	p := New("*.log")

	got := p.FilterParallel([]string{"src/main.go", "debug.log", "build", "trace.log"})

	assert.Equal(t, []string{"debug.log", "trace.log"}, got)
}

func TestFilterParallelPreservesOrder(t *testing.T) {
	p := New("*.log")

	// Enough candidates to actually trigger multiple workers.
	numPaths := runtime.NumCPU() * 100
	paths := make([]string, numPaths)
	var want []string
	for i := 0; i < numPaths; i++ {
		if i%5 == 0 {
			paths[i] = fmt.Sprintf("file_%04d.log", i)
			want = append(want, paths[i])
		} else {
			paths[i] = fmt.Sprintf("file_%04d.txt", i)
		}
	}

	assert.Equal(t, want, p.FilterParallel(paths))
}

func TestFilterParallelMatchesFilter(t *testing.T) {
	p := New("dir_*/file?.*")

	numPaths := runtime.NumCPU()*200 + 3
	paths := make([]string, numPaths)
	for i := 0; i < numPaths; i++ {
		switch i % 4 {
		case 0:
			paths[i] = fmt.Sprintf("dir_%d/file%d.log", i, i%10)
		case 1:
			paths[i] = fmt.Sprintf("dir_%d/file.tmp", i)
		case 2:
			paths[i] = fmt.Sprintf("DIR_%d/FILEX.RS", i)
		default:
			paths[i] = fmt.Sprintf("other_%d/file1.go", i)
		}
	}

	assert.Equal(t, p.Filter(paths), p.FilterParallel(paths))
}

func TestFilterParallelFewerCandidatesThanCPUs(t *testing.T) {
	assert.Equal(t, []string{"a"}, New("a").FilterParallel([]string{"a"}))
	assert.Nil(t, New("z").FilterParallel([]string{"a", "b"}))
}

func TestConcurrentFilterParallel(t *testing.T) {
	const goroutines = 8

	paths := make([]string, 500)
	for i := range paths {
		if i%3 == 0 {
			paths[i] = fmt.Sprintf("file_%d.log", i)
		} else {
			paths[i] = fmt.Sprintf("file_%d.txt", i)
		}
	}
	p := New("*.txt")

	var wg sync.WaitGroup
	wg.Add(goroutines)
	errors := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for _, c := range p.FilterParallel(paths) {
				if strings.HasSuffix(c, ".log") {
					errors <- fmt.Errorf("goroutine %d: FilterParallel kept %q", id, c)
					return
				}
			}
		}(i)
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		t.Error(err)
	}
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func benchPaths(n int) []string {
	paths := make([]string, n)
	for i := range paths {
		if i%4 == 0 {
			paths[i] = fmt.Sprintf("dir/file_%d.log", i)
		} else {
			paths[i] = fmt.Sprintf("dir/file_%d.rs", i)
		}
	}
	return paths
}

func BenchmarkFilter10000(b *testing.B) {
	p := New("dir/*.log")
	paths := benchPaths(10000)

	b.ResetTimer()
	for b.Loop() {
		p.Filter(paths)
	}
}

func BenchmarkFilterParallel10000(b *testing.B) {
	p := New("dir/*.log")
	paths := benchPaths(10000)

	b.ResetTimer()
	for b.Loop() {
		p.FilterParallel(paths)
	}
}
