package wildcard

import (
	"runtime"
	"sync"
)

// Filter returns the candidates that match the pattern, in input order.
//
// For large candidate lists (> 1M), FilterParallel spreads the work over all
// CPUs.
func (p *Pattern) Filter(candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}
	return p.collect(candidates, true)
}

// Reject returns the candidates that do NOT match the pattern, in input order.
func (p *Pattern) Reject(candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}
	return p.collect(candidates, false)
}

// Any reports whether at least one candidate matches.
func (p *Pattern) Any(candidates []string) bool {
	for _, c := range candidates {
		if p.Match(c) {
			return true
		}
	}
	return false
}

func (p *Pattern) collect(candidates []string, want bool) []string {
	var kept []string
	for _, c := range candidates {
		if p.Match(c) == want {
			kept = append(kept, c)
		}
	}
	return kept
}

// FilterParallel returns the same result as Filter. It splits the candidate
// list into runtime.NumCPU() chunks, matches each chunk on its own goroutine,
// and merges results in order.
//
// For small lists (< 10k), the goroutine overhead may exceed the savings. Use
// Filter for small lists.
func (p *Pattern) FilterParallel(candidates []string) []string {
	if len(candidates) == 0 {
		return nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(candidates) {
		numWorkers = len(candidates)
	}

	if numWorkers <= 1 {
		return p.Filter(candidates)
	}

	chunkSize := (len(candidates) + numWorkers - 1) / numWorkers
	var chunks [][]string
	for i := 0; i < len(candidates); i += chunkSize {
		end := min(i+chunkSize, len(candidates))
		chunks = append(chunks, candidates[i:end])
	}

	// One result slot per chunk; the Pattern itself is shared read-only.
	results := make([][]string, len(chunks))
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i, chunk := range chunks {
		go func() {
			defer wg.Done()
			results[i] = p.collect(chunk, true)
		}()
	}
	wg.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	if total == 0 {
		return nil
	}
	merged := make([]string, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}
