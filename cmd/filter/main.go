// Command filter echoes the consent strings whose decoded records
// satisfy a filter expression. Undecodable lines are dropped.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/prebid/go-tcf1/filter"
	"github.com/prebid/go-tcf1/logging"
	"github.com/prebid/go-tcf1/vendorconsent"
)

type options struct {
	Expression string `short:"e" long:"expression" description:"Filter expression"`
	ExprFile   string `short:"f" long:"file" description:"Read the filter expression from a file"`
	Args       struct {
		File string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

func main() {
	log := logging.New(logging.DefaultConfig())

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	prog := opts.Expression
	if prog == "" && opts.ExprFile != "" {
		data, err := os.ReadFile(opts.ExprFile)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to read expression file")
		}
		prog = strings.TrimSpace(string(data))
	}
	if prog == "" {
		log.Fatal().Msg("an expression (-e) or an expression file (-f) is required")
	}

	expr, err := filter.Parse(prog)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to parse filter expression")
	}

	var in io.Reader = os.Stdin
	if opts.Args.File != "" {
		f, err := os.Open(opts.Args.File)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to open file")
		}
		defer f.Close()
		in = f
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		consent, err := vendorconsent.ParseString(strings.TrimSpace(line))
		if err != nil {
			continue
		}
		matched, err := filter.Evaluate(expr, consent)
		if err != nil {
			log.Fatal().Err(err).Msg("filter expression failed to evaluate")
		}
		if matched {
			fmt.Println(line)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal().Err(err).Msg("error reading input")
	}
}
