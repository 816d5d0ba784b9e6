package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/WinPooh32/unwraplog/check"
)

type argSet []string

func (a *argSet) String() string {
	return strings.Join(*a, ", ")
}

func (a *argSet) Set(s string) error {
	*a = strings.Split(s, ",")
	return nil
}

type flags struct {
	jobs     int
	dir      string
	patterns argSet
	names    argSet
}

func main() {
	var flags flags

	flag.IntVar(&flags.jobs, "jobs", 0, "parallel jobs number")
	flag.StringVar(&flags.dir, "dir", "", "go module dir")
	flag.Var(&flags.patterns, "pattern", "list of package patterns")
	flag.Var(&flags.names, "name", "list of panicking accessor names")
	flag.Parse()

	if len(flags.patterns) == 0 {
		flags.patterns = []string{"./..."}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	n, err := run(ctx, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if n > 0 {
		os.Exit(1)
	}
}

func run(ctx context.Context, flags flags) (int, error) {
	chk := check.New(flags.names...)

	if _, err := chk.Load(ctx, flags.dir, flags.patterns...); err != nil {
		return 0, fmt.Errorf("load packages to the checker: %w", err)
	}

	var n int

	for res := range chk.Check(ctx, flags.jobs) {
		fnd, err := res.Get()
		if err != nil {
			return n, fmt.Errorf("check: %w", err)
		}

		fmt.Printf("%s: call to %s may panic\n", fnd.Pos, fnd.Call)
		n++
	}

	return n, nil
}
