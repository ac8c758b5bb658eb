// Package wildcard provides glob-style wildcard matching of whole strings.
//
// A pattern is compiled once into an immutable Pattern and then tested against
// any number of candidates. Matching is a single linear scan that keeps one
// fallback position for the most recent '*'; there is no regular expression
// engine and no recursion.
//
// # Quick Start
//
//	p := wildcard.New("report-*.CSV")
//
//	fmt.Println(p.Match("report-2024.csv")) // true  (case-insensitive by default)
//	fmt.Println(p.Match("report-.csv"))     // true  ('*' may match nothing)
//	fmt.Println(p.Match("old-report.csv"))  // false (whole string only)
//
//	kept := p.Filter([]string{"report-a.csv", "notes.txt"})
//	// kept == []string{"report-a.csv"}
//
// Use Compile(pattern, true) for case-sensitive matching.
//
// # Concurrency
//
// A Pattern is safe for concurrent use. Each Match call works on its own copy of
// the candidate and holds no shared state. For large candidate lists
// (> 1M), FilterParallel splits the work across all CPUs:
//
//	kept := p.FilterParallel(millionsOfNames)
//
// # Pattern Syntax
//
//   - "?" matches exactly one character
//   - "*" matches any sequence of characters, including none
//   - A run such as "**" is the same as a single "*"
//   - Every other character matches itself
//   - Wildcard characters in the candidate are ordinary characters
//
// Characters are Unicode code points. Case-insensitive patterns lower both
// sides with unicode.ToLower, one code point at a time.
//
// # Collections
//
// ContainsKey, Keys, Values, Delete, DeleteValue, Replace, ReplaceValue and
// Compute apply a Pattern to the keys of a map[string]V. A string set is a
// map[string]struct{}.
package wildcard
