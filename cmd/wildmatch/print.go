package main

import (
	"bufio"
	"fmt"
	"io"
)

type printer struct {
	w *bufio.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{bufio.NewWriter(w)}
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) println(s string) {
	p.w.WriteString(s)
	p.w.WriteByte('\n')
}

func (p *printer) flush() error {
	return p.w.Flush()
}
