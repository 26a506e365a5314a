// kundali-match scores one pair: a pair request JSON on stdin (or -input),
// the full match result JSON on stdout
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"

	"kundali/internal/core/version"
	"kundali/internal/platform/bind"
	"kundali/internal/platform/config"
	perr "kundali/internal/platform/errors"
	"kundali/internal/platform/logger"
	"kundali/internal/services/matchmaking"
)

func main() {
	var (
		input       = flag.String("input", "", "pair request JSON file (default stdin)")
		pretty      = flag.Bool("pretty", false, "indent the output")
		showVersion = flag.Bool("version", false, "print build info and exit")
	)
	flag.Parse()

	if *showVersion {
		_ = json.NewEncoder(os.Stdout).Encode(version.Info("kundali-match"))
		return
	}

	l := logger.Get()
	svc := matchmaking.New(matchmaking.ConfigFromEnv(config.New()))

	var in io.Reader = os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			l.Fatal().Err(err).Msg("open input")
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	req, err := bind.ParseJSON[matchmaking.PairRequest](in)
	if err != nil {
		fail(err)
	}

	res, err := svc.MatchPair(context.Background(), req)
	if err != nil {
		fail(err)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		l.Fatal().Err(err).Msg("encode result")
	}
}

// fail prints the wire form of err on stderr and exits nonzero
func fail(err error) {
	_ = json.NewEncoder(os.Stderr).Encode(perr.WireFrom(err))
	os.Exit(1)
}
