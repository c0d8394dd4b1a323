// Command seqquery searches a previously built index for a pattern.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/scigolib/seqidx"
	"github.com/scigolib/seqidx/internal/utils"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("seqquery", flag.ContinueOnError)
	d := fs.Int("d", 1, "blocking factor the index was built with")
	compFlag := fs.String("comp", "", "explicit compressed-text artifact path")
	saFlag := fs.String("sa", "", "explicit suffix-array artifact path")
	sbtFlag := fs.String("sbt", "", "explicit string-B-tree artifact path")
	wtFlag := fs.String("wt", "", "explicit wavelet-tree artifact path")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: seqquery [-d N] <text-file-or-prefix> <pattern>")
		return 1
	}
	textPath, pattern := fs.Arg(0), fs.Arg(1)

	arts := seqidx.ArtifactPaths(textPath, *d)
	if *compFlag != "" {
		arts.CompPath = *compFlag
	}
	if *saFlag != "" {
		arts.SAPath = *saFlag
	}
	if *sbtFlag != "" {
		arts.SBTPath = *sbtFlag
	}
	if *wtFlag != "" {
		arts.WTPath = *wtFlag
	}
	arts.D = *d

	idx, err := seqidx.OpenIndex(arts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "seqquery:", err)
		return exitCodeFor(err)
	}
	defer idx.Close()

	res, err := idx.Query(pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, "seqquery:", err)
		return exitCodeFor(err)
	}

	if !res.Found {
		fmt.Println("not found")
		return 0
	}
	fmt.Printf("(%d, %d, %d, %d)\n", res.Position, res.SaLo, res.SaHi, res.MatchedLen)
	return 0
}

func exitCodeFor(err error) int {
	if errors.Is(err, utils.ErrInputOutOfRange) || errors.Is(err, utils.ErrInvalidSymbol) {
		return 1
	}
	return 2
}
