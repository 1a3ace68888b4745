// Command isemail validates a single email address from the command line
// and prints its diagnosis.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/z3d6380/isemail"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("isemail", flag.ContinueOnError)
	fs.SetOutput(stderr)

	dnsEnabled := fs.Bool("dns", false, "perform an MX/A/CNAME lookup on the domain part")
	severity := fs.String("severity", "off", "severity cutoff: off, warning, or error")
	verbose := fs.Bool("v", false, "log intermediate steps to stderr")
	timeout := fs.Duration("timeout", 5*time.Second, "DNS lookup timeout, ignored without -dns")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: isemail [flags] <address>")
		fs.PrintDefaults()
		return 2
	}
	address := fs.Arg(0)

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	sev, err := parseSeverity(*severity)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	ctx := context.Background()
	if *dnsEnabled {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	logger.Debug("validating", "address", address, "dns", *dnsEnabled, "severity", *severity)

	result := isemail.Validate(ctx, address, isemail.Options{
		DNSEnabled: *dnsEnabled,
		Severity:   sev,
	})

	logger.Debug("done", "diagnosis", result.Diagnosis, "valid", result.Valid)

	fmt.Fprintf(stdout, "%s\t%v\t%s\n", address, result.Valid, result.Diagnosis)
	if !result.Valid {
		return 1
	}
	return 0
}

func parseSeverity(s string) (isemail.SeverityControl, error) {
	switch s {
	case "off":
		return isemail.SeverityOff, nil
	case "warning":
		return isemail.SeverityWarning, nil
	case "error":
		return isemail.SeverityError, nil
	default:
		return 0, fmt.Errorf("isemail: unknown -severity %q (want off, warning, or error)", s)
	}
}
