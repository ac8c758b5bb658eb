package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	wildcard "github.com/armn3t/go-wildcard"
	flag "github.com/ogier/pflag"
	"github.com/pkg/profile"
)

const exitCodeMatch = 0

const exitCodeNoMatch = 1

const exitCodeBadCommandLine = 2

const defaultProfilePath = "."

// maxLineLength bounds a single input line.
const maxLineLength = 1024 * 1024

func usage(p *printer) {
	p.printf("wildmatch: prints lines matching a wildcard pattern in full")
	p.printf("")
	p.printf("Usage: wildmatch [flags] pattern [file ...]")
	p.printf("")
	p.printf("Reads standard input when no file is given, or for file \"-\".")
	p.printf("")
	p.printf("Pattern syntax:")
	p.printf("  ?                    matches exactly one character")
	p.printf("  *                    matches zero or more characters (** is the same as *)")
	p.printf("")
	p.printf("Flags:")
	p.printf("  -s, --case-sensitive compare letters as-is (default ignores case)")
	p.printf("  -v, --invert         print lines that do NOT match")
	p.printf("  -c, --count          print only the number of selected lines")
	p.printf("  -j, --parallel       read all input, then match on all CPUs")
	p.printf("  --profile=mode       write a profile: cpu or mem (default none)")
	p.printf("  --profile-path=dir   directory for profile output (default %s)", defaultProfilePath)
	p.printf("")
	p.printf("Exit status is %d if a line was selected, %d if none, %d on error.",
		exitCodeMatch, exitCodeNoMatch, exitCodeBadCommandLine)
}

// run executes wildmatch with args (excluding the program name) and returns
// the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	out := newPrinter(stdout)
	errOut := newPrinter(stderr)
	defer errOut.flush()

	fs := flag.NewFlagSet("wildmatch", flag.ContinueOnError)
	fs.Usage = func() {}
	caseSensitive := fs.BoolP("case-sensitive", "s", false, "case sensitive")
	invert := fs.BoolP("invert", "v", false, "invert selection")
	count := fs.BoolP("count", "c", false, "count only")
	parallel := fs.BoolP("parallel", "j", false, "parallel matching")
	profileMode := fs.String("profile", "", "profile mode")
	profilePath := fs.String("profile-path", defaultProfilePath, "profile directory")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(out)
			out.flush()
			return exitCodeMatch
		}
		errOut.printf("Error: %s", err)
		usage(errOut)
		return exitCodeBadCommandLine
	}
	if fs.NArg() < 1 {
		errOut.printf("Error: missing pattern")
		usage(errOut)
		return exitCodeBadCommandLine
	}

	if *profileMode != "" {
		prof, err := startProfile(*profileMode, *profilePath)
		if err != nil {
			errOut.printf("Error: %s", err)
			return exitCodeBadCommandLine
		}
		defer prof.Stop()
	}

	p := wildcard.Compile(fs.Arg(0), *caseSensitive)
	files := fs.Args()[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}

	sel := &selector{pattern: p, invert: *invert, count: *count, out: out}
	var err error
	if *parallel {
		err = sel.batch(files, stdin)
	} else {
		err = sel.stream(files, stdin)
	}
	if ferr := sel.finish(); err == nil {
		err = ferr
	}
	if err != nil {
		errOut.printf("Error: %s", err)
		return exitCodeBadCommandLine
	}
	if sel.selected == 0 {
		return exitCodeNoMatch
	}
	return exitCodeMatch
}

func startProfile(mode, path string) (interface {
	Stop()
}, error) {
	var m func(*profile.Profile)
	switch mode {
	case "cpu":
		m = profile.CPUProfile
	case "mem":
		m = profile.MemProfile
	default:
		return nil, fmt.Errorf("unknown profile mode %q (want cpu or mem)", mode)
	}
	return profile.Start(m, profile.ProfilePath(path), profile.NoShutdownHook,
		profile.Quiet), nil
}

// selector writes the selected lines (or their count) to out.
type selector struct {
	pattern  *wildcard.Pattern
	invert   bool
	count    bool
	out      *printer
	selected int
}

// stream matches line by line as input is read.
func (s *selector) stream(files []string, stdin io.Reader) error {
	return eachLine(files, stdin, func(line string) {
		if s.pattern.Match(line) != s.invert {
			s.emit(line)
		}
	})
}

// batch reads every line first and matches them with FilterParallel. Inverted
// selection falls back to Reject.
func (s *selector) batch(files []string, stdin io.Reader) error {
	var lines []string
	if err := eachLine(files, stdin, func(line string) {
		lines = append(lines, line)
	}); err != nil {
		return err
	}
	var kept []string
	if s.invert {
		kept = s.pattern.Reject(lines)
	} else {
		kept = s.pattern.FilterParallel(lines)
	}
	for _, line := range kept {
		s.emit(line)
	}
	return nil
}

func (s *selector) emit(line string) {
	s.selected++
	if !s.count {
		s.out.println(line)
	}
}

func (s *selector) finish() error {
	if s.count {
		s.out.printf("%d", s.selected)
	}
	return s.out.flush()
}

// eachLine calls fn for every line of every file, "-" being stdin.
func eachLine(files []string, stdin io.Reader, fn func(string)) error {
	for _, name := range files {
		if err := scanFile(name, stdin, fn); err != nil {
			return err
		}
	}
	return nil
}

func scanFile(name string, stdin io.Reader, fn func(string)) error {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for sc.Scan() {
		fn(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
