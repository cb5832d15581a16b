// Command decode parses TCF v1 consent strings and prints them as a
// human-readable report or as JSON, one object per input line.
package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/prebid/go-tcf1/logging"
	"github.com/prebid/go-tcf1/vendorconsent"
	"github.com/prebid/go-tcf1/vendorlist"
)

type options struct {
	File       string `short:"f" long:"file" description:"Read consent strings from a file, one per line"`
	Output     string `short:"o" long:"output" default:"human" description:"Output format: human or json"`
	VendorList string `short:"l" long:"vendor-list" description:"Vendor list JSON used to annotate the report with vendor names"`
	Args       struct {
		String string `positional-arg-name:"STRING"`
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

	var render renderFunc
	switch opts.Output {
	case "human":
		render = renderHuman(loadVendorList(opts.VendorList, log))
	case "json":
		render = renderJSON
	default:
		log.Error().Str("format", opts.Output).Msg("unrecognized output format")
		os.Exit(1)
	}

	switch {
	case opts.Args.String != "":
		decodeLine(opts.Args.String, render, log)
	case opts.File != "":
		f, err := os.Open(opts.File)
		if err != nil {
			log.Fatal().Err(err).Msg("unable to open file")
		}
		defer f.Close()
		decodeLines(f, render, log)
	default:
		decodeLines(os.Stdin, render, log)
	}
}

func decodeLines(r io.Reader, render renderFunc, log zerolog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		decodeLine(strings.TrimSpace(scanner.Text()), render, log)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal().Err(err).Msg("error reading input")
	}
}

func decodeLine(line string, render renderFunc, log zerolog.Logger) {
	consent, err := vendorconsent.ParseString(line)
	if err != nil {
		log.Error().Err(err).Msg("unable to decode consent string")
		return
	}
	render(os.Stdout, consent)
}

func loadVendorList(path string, log zerolog.Logger) *vendorlist.VendorList {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to read vendor list")
	}
	list, err := vendorlist.Parse(data)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to parse vendor list")
	}
	log.Debug().Uint16("version", list.Version()).Int("vendors", list.Count()).Msg("vendor list loaded")
	return list
}
