// Package hashcat implements ports.Cracker on top of the hashcat binary.
package hashcat

import (
	"context"
	"strconv"
	"strings"
	"time"

	"crackbench/internal/core/ports"
	"crackbench/internal/platform/cliexec"
	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/logx"
)

// DefaultExecPath is looked up in PATH when no path is configured.
const DefaultExecPath = "hashcat"

// Options configura el adaptador.
type Options struct {
	ExecPath  string
	Timeout   time.Duration // per attack, 0 = none
	ExtraArgs []string      // appended after the positional arguments
	Logger    logx.Logger
}

// Cracker runs straight-mode attacks through hashcat.
type Cracker struct {
	runner    *cliexec.Runner
	extraArgs []string
	logger    logx.Logger
}

var _ ports.Cracker = (*Cracker)(nil)

// New creates a hashcat-backed Cracker.
func New(opts Options) *Cracker {
	if opts.Logger == nil {
		opts.Logger = logx.NewNop()
	}
	if strings.TrimSpace(opts.ExecPath) == "" {
		opts.ExecPath = DefaultExecPath
	}
	logger := opts.Logger.With("component", "hashcat")
	return &Cracker{
		runner: cliexec.New(logger, cliexec.Config{
			Name:     "hashcat",
			ExecPath: opts.ExecPath,
			Timeout:  opts.Timeout,
		}),
		extraArgs: append([]string(nil), opts.ExtraArgs...),
		logger:    logger,
	}
}

// Name implementa ports.Cracker.
func (c *Cracker) Name() string {
	return "hashcat"
}

// Available reports whether the binary can be resolved.
func (c *Cracker) Available() error {
	_, err := c.runner.LookPath()
	return err
}

// Args builds the command line for req.
//
//	-m <mode> -a <attack> <hashfile> <wordlist> [--show] [extra...]
func (c *Cracker) Args(req ports.CrackRequest) []string {
	args := []string{
		"-m", req.HashMode,
		"-a", strconv.Itoa(req.AttackMode),
		req.HashFile,
		req.Wordlist,
	}
	if req.Show {
		args = append(args, "--show")
	}
	return append(args, c.extraArgs...)
}

// Crack implementa ports.Cracker.
func (c *Cracker) Crack(ctx context.Context, req ports.CrackRequest) (ports.CrackOutput, error) {
	if req.HashFile == "" || req.Wordlist == "" {
		return ports.CrackOutput{}, errors.Wrap(errors.ErrInvalidInput, "hash file and wordlist are required")
	}
	if req.HashMode == "" {
		return ports.CrackOutput{}, errors.Wrap(errors.ErrInvalidInput, "hash mode is required")
	}

	res, err := c.runner.Run(ctx, c.Args(req), nil)
	out := ports.CrackOutput{
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
	}
	if err != nil {
		return out, err
	}

	c.logger.Debug("hashcat finished",
		"exit_code", res.ExitCode,
		"duration", res.Duration.String(),
		"wordlist", req.Wordlist,
	)
	return out, nil
}
