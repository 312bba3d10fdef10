package docker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/sirupsen/logrus"
)

// Poller probes the node at a fixed interval until it accepts CQL
// connections. The interval is constant rather than exponential: container
// boot time is roughly uniform, not load-dependent.
type Poller struct {
	Env      Environment
	Interval time.Duration
	MaxWait  time.Duration
	Log      logrus.FieldLogger
}

// Wait blocks until a cqlsh probe inside the container succeeds with no
// error output. The total budget is MaxWait, spent as MaxWait/Interval
// evenly spaced attempts.
func (p *Poller) Wait(ctx context.Context, container string) error {
	attempts := uint(p.MaxWait / p.Interval)
	if attempts == 0 {
		attempts = 1
	}

	p.Log.Infof("waiting for node in container %q to accept CQL connections", container)
	err := retry.Do(
		func() error { return p.probe(ctx, container) },
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(p.Interval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			p.Log.Debugf("readiness probe %d/%d failed: %v", n+1, attempts, err)
		}),
	)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w after %d attempts: %v", ErrReadinessTimeout, attempts, err)
	}
	return nil
}

func (p *Poller) probe(ctx context.Context, container string) error {
	_, stderr, err := p.Env.Run(ctx, "exec", container, "cqlsh")
	if err != nil {
		return err
	}
	if trimmed := strings.TrimSpace(stderr); trimmed != "" {
		return fmt.Errorf("probe reported: %s", firstLine(trimmed))
	}
	return nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
