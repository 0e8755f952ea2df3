// Package runner invokes the external report generator and interprets its
// exit status.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/logging"
	"github.com/IgorBayerl/ReportGenerator/coverhtml/internal/utils"
)

// DefaultReporterPath is where the report generator executable is expected,
// relative to the working directory.
var DefaultReporterPath = filepath.Join("tools", "ReportGenerator", "ReportGenerator.exe")

// Result is the captured outcome of one report generator run.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Reporter turns a coverage file into HTML pages inside outputPath.
// A non-zero ExitCode is reported through Result, not as an error; the error
// return is reserved for failing to run the tool at all.
type Reporter interface {
	Run(inputPath, outputPath string) (Result, error)
}

// SubprocessError reports a report generator run that exited non-zero.
type SubprocessError struct {
	CommandLine string
	ExitCode    int
}

func (e *SubprocessError) Error() string {
	return fmt.Sprintf("'%s' failed with error code %d", e.CommandLine, e.ExitCode)
}

// ExecReporter runs the report generator executable at Path as a child process.
type ExecReporter struct {
	Path string
}

// NewExecReporter returns an ExecReporter for path, or for DefaultReporterPath
// when path is empty.
func NewExecReporter(path string) *ExecReporter {
	if path == "" {
		path = DefaultReporterPath
	}
	return &ExecReporter{Path: path}
}

// CommandLine is the human-readable form of an invocation, used for logging
// and error messages only. The process itself receives separate arguments.
func CommandLine(reporterPath, inputPath, outputPath string) string {
	return strings.Join([]string{reporterPath, inputPath, outputPath}, " ")
}

func (r *ExecReporter) CommandLine(inputPath, outputPath string) string {
	return CommandLine(r.Path, inputPath, outputPath)
}

// Run starts the executable with the input file and output directory as two
// separate arguments and blocks until it exits. There is no timeout.
func (r *ExecReporter) Run(inputPath, outputPath string) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(r.Path, inputPath, outputPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("failed to run '%s': %w", r.CommandLine(inputPath, outputPath), err)
	}
	return res, nil
}

// Check returns nil for a zero exit code. Otherwise it prints the exit code and
// both captured streams and returns a *SubprocessError.
func Check(log *logging.Logger, commandLine string, res Result) error {
	if res.ExitCode == 0 {
		return nil
	}
	log.Diagnosef("Failed with error code %d", res.ExitCode)
	log.Diagnosef("Stdout:")
	log.Diagnosef("%s", utils.DecodeOutput(res.Stdout))
	log.Diagnosef("Stderr:")
	log.Diagnosef("%s", utils.DecodeOutput(res.Stderr))
	return &SubprocessError{CommandLine: commandLine, ExitCode: res.ExitCode}
}
