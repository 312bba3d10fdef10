// Package docker gates stress runs on a running, ready ScyllaDB container.
package docker

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

var (
	// ErrEnvironmentUnavailable reports that the container runtime could
	// not start the container, e.g. the daemon is down or the name is wrong.
	ErrEnvironmentUnavailable = errors.New("container runtime unavailable")

	// ErrReadinessTimeout reports that the node never became ready within
	// the poll budget.
	ErrReadinessTimeout = errors.New("node readiness timeout")

	// ErrPatternNotFound reports an expected token missing from otherwise
	// successful command output.
	ErrPatternNotFound = errors.New("expected pattern not found")
)

// Environment is the docker CLI surface the gate drives.
type Environment interface {
	Run(ctx context.Context, args ...string) (stdout, stderr string, err error)
}

// CLI shells out to the docker binary.
type CLI struct{}

// Run executes one docker subcommand and captures both streams. A non-zero
// exit is not an error here; callers interpret stderr the way the docker
// CLI reports failures. The returned error means the binary itself could
// not run.
func (CLI) Run(ctx context.Context, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, "docker", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		err = nil
	}
	return stdout.String(), stderr.String(), err
}
