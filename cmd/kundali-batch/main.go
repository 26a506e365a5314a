// kundali-batch ranks a candidate pool against one subject: a batch request
// JSON on stdin (or -input), the ranked report JSON on stdout
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"strconv"

	"kundali/internal/core/version"
	"kundali/internal/platform/bind"
	"kundali/internal/platform/config"
	perr "kundali/internal/platform/errors"
	"kundali/internal/platform/logger"
	"kundali/internal/services/matchmaking"
)

func mustSetEnv(k, v string) {
	if v != "" {
		_ = os.Setenv(k, v)
	}
}

func main() {
	var (
		input       = flag.String("input", "", "batch request JSON file (default stdin)")
		workers     = flag.Int("workers", 0, "scoring concurrency (0 = env/default)")
		policy      = flag.String("policy", "", "reject policy: exclude or rank_last (default env)")
		rejectNadi  = flag.Bool("reject-same-nadi", false, "reject candidates sharing the subject's nadi before scoring")
		minGuna     = flag.Int("min-guna", -1, "drop pairs below this total (-1 = env/default)")
		pretty      = flag.Bool("pretty", false, "indent the output")
		showVersion = flag.Bool("version", false, "print build info and exit")
	)
	flag.Parse()

	if *showVersion {
		_ = json.NewEncoder(os.Stdout).Encode(version.Info("kundali-batch"))
		return
	}

	// pass CLI flags into CORE_MATCH_* so the service reads one config source
	if *workers > 0 {
		mustSetEnv("CORE_MATCH_WORKERS", strconv.Itoa(*workers))
	}
	mustSetEnv("CORE_MATCH_REJECT_POLICY", *policy)
	if *rejectNadi {
		mustSetEnv("CORE_MATCH_REJECT_SAME_NADI", "1")
	}
	if *minGuna >= 0 {
		mustSetEnv("CORE_MATCH_MIN_GUNA", strconv.Itoa(*minGuna))
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

	req, err := bind.ParseJSON[matchmaking.BatchRequest](in)
	if err != nil {
		fail(err)
	}

	report, err := svc.MatchBatch(context.Background(), req)
	if err != nil {
		fail(err)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		l.Fatal().Err(err).Msg("encode report")
	}
}

// fail prints the wire form of err on stderr and exits nonzero
func fail(err error) {
	_ = json.NewEncoder(os.Stderr).Encode(perr.WireFrom(err))
	os.Exit(1)
}
