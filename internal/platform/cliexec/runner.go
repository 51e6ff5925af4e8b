// Package cliexec runs external command-line tools and captures their output.
package cliexec

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/logx"
)

// LineHandler receives each stdout line as it is produced. The slice is only
// valid during the call.
type LineHandler func(line []byte)

// Result is the captured outcome of one process run.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Config configura un Runner.
type Config struct {
	Name     string        // nombre para logs
	ExecPath string        // binario (resuelto con LookPath)
	Timeout  time.Duration // 0 = sin límite
}

// Runner executes one binary with per-call arguments.
//
// A Runner holds no per-run state and is safe for concurrent use.
type Runner struct {
	logger   logx.Logger
	execPath string
	timeout  time.Duration
}

// New creates a Runner. The binary is resolved lazily on each Run so a tool
// installed after startup is picked up.
func New(logger logx.Logger, cfg Config) *Runner {
	if logger == nil {
		logger = logx.NewNop()
	}
	name := cfg.Name
	if name == "" {
		name = cfg.ExecPath
	}
	return &Runner{
		logger:   logger.With("component", "cliexec", "tool", name),
		execPath: cfg.ExecPath,
		timeout:  cfg.Timeout,
	}
}

// ExecPath returns the configured executable.
func (r *Runner) ExecPath() string {
	return r.execPath
}

// Timeout returns the per-run limit (0 = none).
func (r *Runner) Timeout() time.Duration {
	return r.timeout
}

// LookPath resolves the executable, returning errors.ErrBinaryNotFound when
// it is missing.
func (r *Runner) LookPath() (string, error) {
	if strings.TrimSpace(r.execPath) == "" {
		return "", errors.Wrap(errors.ErrBinaryNotFound, "exec path is empty")
	}
	path, err := exec.LookPath(r.execPath)
	if err != nil {
		return "", errors.Mark(err, errors.ErrBinaryNotFound)
	}
	return path, nil
}

// Run executes the binary and waits for it to exit.
//
// stdout is streamed line by line to onLine (may be nil) and also accumulated
// in Result.Stdout. stderr is drained in background so a chatty process never
// blocks. A non-zero exit status is reported in Result.ExitCode with a nil
// error; the error is reserved for runs that could not start or were cut short
// by the context or the timeout.
func (r *Runner) Run(ctx context.Context, args []string, onLine LineHandler) (Result, error) {
	var res Result

	path, err := r.LookPath()
	if err != nil {
		return res, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	r.logger.Debug("executing command", "exec_path", path, "args", args, "timeout", r.timeout.String())

	cmd := exec.CommandContext(ctx, path, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return res, errors.Wrap(err, "failed to create stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return res, errors.Wrap(err, "failed to create stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return res, errors.Wrap(err, "failed to start process")
	}
	r.logger.Debug("subprocess started", "pid", cmd.Process.Pid)

	var stderrBytes []byte
	var stderrWg sync.WaitGroup
	stderrWg.Add(1)
	go func() {
		defer stderrWg.Done()
		data, readErr := io.ReadAll(stderr)
		if readErr != nil {
			r.logger.Warn("error reading stderr", "error", readErr.Error())
		}
		stderrBytes = data
	}()

	var out bytes.Buffer
	scanner := bufio.NewScanner(stdout)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024) // 10MB max token size

	for scanner.Scan() {
		line := scanner.Bytes()
		out.Write(line)
		out.WriteByte('\n')
		if onLine != nil {
			onLine(line)
		}
	}
	if err := scanner.Err(); err != nil {
		r.logger.Warn("scanner error", "error", err.Error())
		// vaciar el resto para que el proceso no quede bloqueado
		_, _ = io.Copy(io.Discard, stdout)
	}

	// stderr must be fully read before Wait closes the pipe
	stderrWg.Wait()
	waitErr := cmd.Wait()

	res.Stdout = out.String()
	res.Stderr = string(stderrBytes)
	res.Duration = time.Since(start)

	if res.Stderr != "" {
		r.logger.Debug("subprocess stderr", "output", res.Stderr)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		r.logger.Warn("subprocess interrupted", "error", ctxErr.Error(), "duration", res.Duration.String())
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return res, errors.Mark(ctxErr, errors.ErrTimeout)
		}
		return res, ctxErr
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			r.logger.Debug("subprocess exited with status",
				"exit_code", res.ExitCode,
				"duration", res.Duration.String(),
			)
			return res, nil
		}
		return res, errors.Wrap(waitErr, "process wait failed")
	}

	r.logger.Debug("subprocess completed", "duration", res.Duration.String())
	return res, nil
}
