package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Launcher starts one external process and captures its output to completion.
type Launcher interface {
	Launch(ctx context.Context, invocation string) (stdout, stderr string, err error)
}

// ExecLauncher launches invocations through os/exec.
type ExecLauncher struct{}

// Launch runs the invocation and blocks until the process exits and both
// output streams hit EOF. A non-zero exit status is not an error: the
// stress tool reports its own failures on stderr, which callers log.
func (ExecLauncher) Launch(ctx context.Context, invocation string) (string, string, error) {
	argv := strings.Fields(invocation)
	if len(argv) == 0 {
		return "", "", fmt.Errorf("empty invocation")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
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
