package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/filesystem"
	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/logging"
	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/reportconfig"
	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/reporting"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status. Usage
// problems print the usage message to stdout; any later failure is reported
// on stderr after the pipeline has printed its own diagnostics.
func run(args []string, stdout, stderr io.Writer) int {
	start := time.Now()

	cfg, err := reportconfig.Parse(filesystem.DefaultFS{}, args)
	if err != nil {
		var usageErr *reportconfig.UsageError
		if errors.As(err, &usageErr) && usageErr.Reason != "" {
			fmt.Fprintln(stdout, usageErr.Reason)
			fmt.Fprintln(stdout)
		}
		fmt.Fprintln(stdout, reportconfig.Usage)
		return 1
	}

	log := logging.New(stdout, cfg.Verbosity)
	driver := reporting.NewDriver(cfg, log)
	if _, err := driver.Run(cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	log.Verbosef("Report generation completed in %.2f seconds", time.Since(start).Seconds())
	return 0
}
