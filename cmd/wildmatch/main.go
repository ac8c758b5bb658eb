// Command wildmatch prints the input lines that match a wildcard pattern in
// full.
//
//	wildmatch [flags] pattern [file ...]
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
