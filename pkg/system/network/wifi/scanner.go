package network_wifi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrMalformedLine = errors.New("malformed scan output")

// CommandError is returned when the scan tool could not be run or exited
// non-zero.
type CommandError struct {
	Command []string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("running %q: %v: %s", strings.Join(e.Command, " "), e.Err, e.Stderr)
	}
	return fmt.Sprintf("running %q: %v", strings.Join(e.Command, " "), e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Runner executes a scan command and returns what it wrote to stdout. On
// failure it returns whatever stdout was captured alongside the error.
type Runner interface {
	Run(ctx context.Context, argv []string) ([]byte, error)
}

var _ Runner = ExecRunner{}

type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, &CommandError{Err: errors.New("empty command")}
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return out.Bytes(), &CommandError{
			Command: argv,
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}

	return out.Bytes(), nil
}

type WifiScanner interface {
	Scan(ctx context.Context) (ScanResult, error)
}

var _ WifiScanner = &Scanner{}

type ScanResult struct {
	Variant      Variant
	Device       string
	AccessPoints []AccessPoint
	Diagnostics  []Diagnostic
}

// Scanner runs one platform scan tool and parses its output.
type Scanner struct {
	Variant Variant
	Device  string
	Sudo    bool
	Runner  Runner
	Log     logrus.FieldLogger
}

func NewScanner(variant Variant, device string, runner Runner, log logrus.FieldLogger) *Scanner {
	if runner == nil {
		runner = ExecRunner{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scanner{
		Variant: variant,
		Device:  device,
		Runner:  runner,
		Log:     log.WithFields(logrus.Fields{"variant": variant.String(), "device": device}),
	}
}

func (s *Scanner) Command() ([]string, error) {
	return s.Variant.Command(s.Device, s.Sudo)
}

// Output runs the scan command and decodes what it printed. If the command
// failed but still printed something, that output is returned with the error.
func (s *Scanner) Output(ctx context.Context) (string, error) {
	argv, err := s.Command()
	if err != nil {
		return "", err
	}

	s.Log.WithField("command", strings.Join(argv, " ")).Debug("running scan command")
	raw, err := s.Runner.Run(ctx, argv)
	return DecodeOutput(raw), err
}

func (s *Scanner) Scan(ctx context.Context) (ScanResult, error) {
	parser := s.Variant.Parser()
	if parser == nil {
		return ScanResult{}, ErrUnsupportedPlatform
	}

	output, err := s.Output(ctx)
	if err != nil {
		if strings.TrimSpace(output) == "" {
			return ScanResult{}, err
		}
		s.Log.WithError(err).Warn("scan command failed, parsing the output it produced")
	}

	parsed := parser.Parse(output)
	for _, d := range parsed.Diagnostics {
		s.Log.WithFields(logrus.Fields{
			"line": d.Line,
			"text": d.Text,
		}).WithError(d.Err).Warn("skipping unparseable scan output")
	}
	s.Log.WithField("count", len(parsed.AccessPoints)).Debug("scan complete")

	return ScanResult{
		Variant:      s.Variant,
		Device:       s.Device,
		AccessPoints: parsed.AccessPoints,
		Diagnostics:  parsed.Diagnostics,
	}, nil
}
