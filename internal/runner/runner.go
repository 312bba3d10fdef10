package runner

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Result captures one completed stress run.
type Result struct {
	ID         string        `json:"id"`
	Invocation string        `json:"invocation"`
	Stdout     string        `json:"-"`
	Stderr     string        `json:"-"`
	Start      time.Time     `json:"start_time"`
	End        time.Time     `json:"end_time"`
	Duration   time.Duration `json:"duration"`
}

// Options configure a Runner.
type Options struct {
	Launcher Launcher
	Log      logrus.FieldLogger

	// EchoOutput reports each run's full stdout at info level.
	EchoOutput bool

	// Tracer, when set, records one span per run.
	Tracer trace.Tracer
}

// Runner fans out a batch of invocations as concurrent processes and joins
// on their completion.
type Runner struct {
	opt Options
}

func New(opt Options) *Runner {
	if opt.Launcher == nil {
		opt.Launcher = ExecLauncher{}
	}
	if opt.Log == nil {
		opt.Log = logrus.StandardLogger()
	}
	return &Runner{opt: opt}
}

// ExecuteAll launches every invocation concurrently and returns once all
// processes have terminated. Exactly one Result is produced per invocation;
// result order follows completion, not invocation order.
func (r *Runner) ExecuteAll(ctx context.Context, invocations []string) []Result {
	results := make([]Result, 0, len(invocations))
	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(len(invocations))
	for _, invocation := range invocations {
		go func(invocation string) {
			defer wg.Done()
			res := r.runOne(ctx, invocation)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
		}(invocation)
	}
	wg.Wait()

	return results
}

func (r *Runner) runOne(ctx context.Context, invocation string) Result {
	var span trace.Span
	if r.opt.Tracer != nil {
		ctx, span = r.opt.Tracer.Start(ctx, "stress.run",
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attribute.String("stress.invocation", invocation)),
		)
	}

	id := ulid.Make().String()
	start := time.Now()
	stdout, stderr, err := r.opt.Launcher.Launch(ctx, invocation)
	end := time.Now()
	duration := end.Sub(start)

	if err != nil {
		r.opt.Log.Warnf("run %s: launch failed: %v", id, err)
	}
	if trimmed := strings.TrimSpace(stderr); trimmed != "" {
		r.opt.Log.Warnf("run %s: stress tool stderr:\n%s", id, trimmed)
	}
	if r.opt.EchoOutput {
		r.opt.Log.Infof("run %s: command %q executed with output:\n%s", id, invocation, stdout)
	}

	if span != nil {
		span.SetAttributes(
			attribute.String("stress.run_id", id),
			attribute.Float64("stress.duration_ms", float64(duration)/float64(time.Millisecond)),
		)
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}

	return Result{
		ID:         id,
		Invocation: invocation,
		Stdout:     stdout,
		Stderr:     stderr,
		Start:      start,
		End:        end,
		Duration:   duration,
	}
}
