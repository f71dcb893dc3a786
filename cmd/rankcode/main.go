// Command rankcode compresses and decompresses files with a frequency-ranked
// chain prefix code.
//
// Usage:
//
//     rankcode encode [-q] IN OUT
//     rankcode decode IN OUT
//     rankcode stat IN
//     rankcode rank IN
//     rankcode serve
//
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chronos-tachyon/rankcode"
	"github.com/chronos-tachyon/rankcode/internal/config"
	"github.com/chronos-tachyon/rankcode/internal/logger"
	"github.com/chronos-tachyon/rankcode/internal/report"
	"github.com/chronos-tachyon/rankcode/internal/server"
)

var errUsage = errors.New("usage")

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  rankcode encode [-q] IN OUT")
	fmt.Fprintln(w, "  rankcode decode IN OUT")
	fmt.Fprintln(w, "  rankcode stat IN")
	fmt.Fprintln(w, "  rankcode rank IN")
	fmt.Fprintln(w, "  rankcode serve")
}

func main() {
	logg := logger.New()
	cfg, err := config.Load()
	if err != nil {
		logg.Errorf("config: %v", err)
		os.Exit(2)
	}

	if err := run(os.Args[1:], cfg, logg, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			usage(os.Stderr)
			os.Exit(2)
		}
		logg.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(args []string, cfg config.Config, logg logger.Logger, stdout io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "encode":
		fs := flag.NewFlagSet("encode", flag.ContinueOnError)
		quiet := fs.Bool("q", false, "do not print a size report")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}
		if fs.NArg() != 2 {
			return errUsage
		}
		return encodeFile(fs.Arg(0), fs.Arg(1), *quiet, cfg, stdout)

	case "decode":
		if len(args) != 2 {
			return errUsage
		}
		return decodeFile(args[0], args[1])

	case "stat":
		if len(args) != 1 {
			return errUsage
		}
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		c, err := rankcode.EncodeContainer(src)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return writeReport(stdout, src, c, cfg)

	case "rank":
		if len(args) != 1 {
			return errUsage
		}
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		order, err := rankcode.Rank(src)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintln(stdout, order)
		return nil

	case "serve":
		if len(args) != 0 {
			return errUsage
		}
		logg.Infof("starting server at %s", cfg.Addr)
		return server.New(cfg, logg).Run(cfg.Addr)

	default:
		return errUsage
	}
}

func encodeFile(in, out string, quiet bool, cfg config.Config, stdout io.Writer) error {
	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	c, err := rankcode.EncodeContainer(src)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	raw, err := c.MarshalBinary()
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		return err
	}
	if quiet {
		return nil
	}
	return writeReport(stdout, src, c, cfg)
}

func decodeFile(in, out string) error {
	raw, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	src, err := rankcode.Decode(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	return os.WriteFile(out, src, 0o644)
}

func writeReport(w io.Writer, src []byte, c rankcode.Container, cfg config.Config) error {
	r, err := report.Build(src, c, cfg.ZstdLevel)
	if err != nil {
		return err
	}
	_, err = r.WriteTo(w)
	return err
}
