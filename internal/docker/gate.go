package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Gate ensures the container is running and its node is ready before
// handing out the node's address.
type Gate struct {
	Env    Environment
	Poller *Poller
	Log    logrus.FieldLogger
}

// EnsureReady starts the container when it is not running, waits for the
// node to accept connections, and returns its IPv4 address. Calling it
// while the container is already running has no side effect.
func (g *Gate) EnsureReady(ctx context.Context, container string) (string, error) {
	running, err := g.isRunning(ctx, container)
	if err != nil {
		return "", err
	}
	if !running {
		if err := g.start(ctx, container); err != nil {
			return "", err
		}
	}
	if err := g.Poller.Wait(ctx, container); err != nil {
		return "", err
	}
	return g.nodeAddress(ctx, container)
}

func (g *Gate) isRunning(ctx context.Context, container string) (bool, error) {
	stdout, _, err := g.Env.Run(ctx, "inspect", container)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrEnvironmentUnavailable, err)
	}
	// inspect prints a JSON array; stderr plus empty output means the
	// container does not exist yet, which start will surface if it is
	// a real problem.
	return gjson.Get(stdout, "0.State.Running").Bool(), nil
}

func (g *Gate) start(ctx context.Context, container string) error {
	g.Log.Infof("starting container %q", container)
	_, stderr, err := g.Env.Run(ctx, "start", container)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEnvironmentUnavailable, err)
	}
	if trimmed := strings.TrimSpace(stderr); trimmed != "" {
		return fmt.Errorf("%w: %s", ErrEnvironmentUnavailable, firstLine(trimmed))
	}
	return nil
}

func (g *Gate) nodeAddress(ctx context.Context, container string) (string, error) {
	g.Log.Info("reading node address from nodetool status")
	stdout, _, err := g.Env.Run(ctx, "exec", container, "nodetool", "status")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEnvironmentUnavailable, err)
	}
	return ExtractAddress(stdout)
}
