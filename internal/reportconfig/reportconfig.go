package reportconfig

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/filesystem"
	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/logging"
	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/runner"
)

// Usage is printed whenever the command line cannot be accepted.
const Usage = "Usage: coverhtml [-verbosity <level>] <opencover-output.xml> <outdir>\n" +
	"\n" +
	"Converts an OpenCover XML file into browsable HTML. Each run writes to a new\n" +
	"directory <outdir>/coverhtml-NNN so results of earlier runs are kept.\n" +
	"\n" +
	"Verbosity levels: Verbose, Info, Warning, Error, Off"

// UsageError reports a command line that cannot be run. Reason is empty when
// only the usage message should be shown.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	if e.Reason == "" {
		return "invalid usage"
	}
	return e.Reason
}

// Configuration holds everything a single report run needs.
type Configuration struct {
	// InputFile is the OpenCover XML file to convert.
	InputFile string
	// OutputBase is the directory under which numbered result directories are created.
	OutputBase string
	// ReporterPath is the report generator executable. It is not settable
	// from the command line.
	ReporterPath string
	Verbosity    logging.VerbosityLevel
}

// NewConfiguration returns a Configuration with the default report generator
// location and Info verbosity.
func NewConfiguration(inputFile, outputBase string) *Configuration {
	return &Configuration{
		InputFile:    inputFile,
		OutputBase:   outputBase,
		ReporterPath: runner.DefaultReporterPath,
		Verbosity:    logging.Info,
	}
}

// Parse reads flags and the two positional arguments from args (without the
// program name) and checks that the input file exists. Every rejection is a
// *UsageError; nothing is created on disk.
//
// Exactly two arguments are always taken as the input file and the output
// directory, even when they start with '-'. Flags are only recognized when
// more arguments are given.
func Parse(fsys filesystem.Filesystem, args []string) (*Configuration, error) {
	if len(args) == 2 {
		cfg := NewConfiguration(args[0], args[1])
		if err := cfg.Validate(fsys); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	flags := flag.NewFlagSet("coverhtml", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	verbosityStr := flags.String("verbosity", "Info", "Logging verbosity level (Verbose, Info, Warning, Error, Off)")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, &UsageError{}
		}
		return nil, &UsageError{Reason: err.Error()}
	}

	verbosity, err := logging.ParseVerbosity(*verbosityStr)
	if err != nil {
		return nil, &UsageError{Reason: err.Error()}
	}

	positional := flags.Args()
	if len(positional) != 2 {
		return nil, &UsageError{}
	}

	cfg := NewConfiguration(positional[0], positional[1])
	cfg.Verbosity = verbosity

	if err := cfg.Validate(fsys); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that InputFile names an existing regular file.
func (c *Configuration) Validate(fsys filesystem.Filesystem) error {
	info, err := fsys.Stat(c.InputFile)
	if err != nil {
		return &UsageError{Reason: fmt.Sprintf("File '%s' doesn't exist", c.InputFile)}
	}
	if info.IsDir() {
		return &UsageError{Reason: fmt.Sprintf("'%s' is a directory, not a coverage file", c.InputFile)}
	}
	if !info.Mode().IsRegular() {
		return &UsageError{Reason: fmt.Sprintf("'%s' is not a regular file", c.InputFile)}
	}
	return nil
}
