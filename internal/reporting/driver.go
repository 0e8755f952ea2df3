// Package reporting drives one coverage report run: prepare the numbered
// result directory, stage the coverage file into it and hand both to the
// report generator.
package reporting

import (
	"errors"

	"github.com/dustin/go-humanize"

	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/filesystem"
	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/logging"
	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/outputdir"
	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/reportconfig"
	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/reporter/htmlreport"
	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/runner"
	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/staging"
)

// Outcome describes what a run left on disk.
type Outcome struct {
	// Dir is the newly created coverhtml-NNN directory.
	Dir         string
	StagedFile  string
	StagedBytes int64
	// EntryPoint is zero when the generator did not write a recognizable start page.
	EntryPoint htmlreport.EntryPoint
}

// Driver runs the report pipeline against an injected filesystem and report
// generator.
type Driver struct {
	FS       filesystem.Filesystem
	Reporter runner.Reporter
	Log      *logging.Logger
}

// NewDriver returns a Driver using the real filesystem and the report
// generator executable named in cfg.
func NewDriver(cfg *reportconfig.Configuration, log *logging.Logger) *Driver {
	return &Driver{
		FS:       filesystem.DefaultFS{},
		Reporter: runner.NewExecReporter(cfg.ReporterPath),
		Log:      log,
	}
}

// Run executes the pipeline once. Steps are not retried and a failure leaves
// whatever was already created in place. On a generator failure the returned
// Outcome still names the result directory and the staged copy.
func (d *Driver) Run(cfg *reportconfig.Configuration) (Outcome, error) {
	var out Outcome

	if err := outputdir.EnsureBase(d.FS, cfg.OutputBase); err != nil {
		return out, err
	}

	dir, err := outputdir.Allocate(d.FS, cfg.OutputBase)
	if err != nil {
		return out, err
	}
	out.Dir = dir
	d.Log.Verbosef("Created result directory %s", dir)

	staged, n, err := staging.Stage(d.FS, cfg.InputFile, dir)
	if err != nil {
		return out, err
	}
	out.StagedFile, out.StagedBytes = staged, n
	d.Log.Verbosef("Staged %s (%s)", staged, humanize.Bytes(uint64(n)))

	commandLine := runner.CommandLine(cfg.ReporterPath, cfg.InputFile, dir)
	d.Log.Infof("\nRunning '%s'", commandLine)
	res, err := d.Reporter.Run(cfg.InputFile, dir)
	if err != nil {
		return out, err
	}
	if err := runner.Check(d.Log, commandLine, res); err != nil {
		return out, err
	}

	ep, err := htmlreport.FindEntryPoint(d.FS, dir)
	switch {
	case err == nil:
		out.EntryPoint = ep
		d.Log.Verbosef("Report entry point: %s (%q)", ep.Path, ep.Title)
	case errors.Is(err, htmlreport.ErrNoEntryPoint):
		d.Log.Warningf("report generator wrote no index page to %s", dir)
	default:
		d.Log.Warningf("%v", err)
	}
	return out, nil
}
