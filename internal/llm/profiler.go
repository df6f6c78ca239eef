// In file: internal/llm/profiler.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dileep-u-k/toolhub/internal/logging"
)

// ToolProfile is the usage record of one tool.
type ToolProfile struct {
	ToolID         string              `json:"tool_id"`
	AvgLatencyMS   int64               `json:"avg_latency_ms"`
	TotalSuccesses int64               `json:"total_successes"`
	TotalFailures  int64               `json:"total_failures"`
	FailuresByKind map[ErrorKind]int64 `json:"failures_by_kind"`
	ErrorRate      float64             `json:"error_rate"`
	LastInvokedAt  time.Time           `json:"last_invoked_at"`
}

// latencyAlpha weights the newest sample in the moving latency average.
const latencyAlpha = 0.1

const (
	fieldAvgLatency    = "avg_latency_ms"
	fieldSuccesses     = "total_successes"
	fieldFailures      = "total_failures"
	fieldLastInvoked   = "last_invoked_at"
	fieldFailurePrefix = "failures:"
)

// Profiler keeps per-tool usage counters in Redis. Recording is best-effort:
// errors are logged and never returned to the invocation path.
type Profiler struct {
	rdb *redis.Client
	log *logging.Logger
}

func NewProfiler(rdb *redis.Client, log *logging.Logger) *Profiler {
	if log == nil {
		log = logging.Nop()
	}
	return &Profiler{rdb: rdb, log: log}
}

func (p *Profiler) getProfileKey(toolID string) string {
	return fmt.Sprintf("profile:%s", toolID)
}

// GetProfile returns the usage record of toolID. An unknown tool yields a
// zero-valued profile.
func (p *Profiler) GetProfile(ctx context.Context, toolID string) (*ToolProfile, error) {
	data, err := p.rdb.HGetAll(ctx, p.getProfileKey(toolID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read profile for %s: %w", toolID, err)
	}

	profile := &ToolProfile{ToolID: toolID, FailuresByKind: make(map[ErrorKind]int64)}
	profile.AvgLatencyMS, _ = strconv.ParseInt(data[fieldAvgLatency], 10, 64)
	profile.TotalSuccesses, _ = strconv.ParseInt(data[fieldSuccesses], 10, 64)
	profile.TotalFailures, _ = strconv.ParseInt(data[fieldFailures], 10, 64)
	profile.LastInvokedAt, _ = time.Parse(time.RFC3339Nano, data[fieldLastInvoked])
	for field, value := range data {
		if kind, ok := strings.CutPrefix(field, fieldFailurePrefix); ok {
			profile.FailuresByKind[ErrorKind(kind)], _ = strconv.ParseInt(value, 10, 64)
		}
	}
	if total := profile.TotalSuccesses + profile.TotalFailures; total > 0 {
		profile.ErrorRate = float64(profile.TotalFailures) / float64(total)
	}
	return profile, nil
}

// RecordSuccess counts a successful call and folds latency into the average.
func (p *Profiler) RecordSuccess(ctx context.Context, toolID string, latency time.Duration) {
	key := p.getProfileKey(toolID)

	err := p.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, key, fieldAvgLatency).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		sample := float64(latency.Milliseconds())
		next := sample
		if err == nil {
			prev, _ := strconv.ParseFloat(current, 64)
			next = latencyAlpha*sample + (1-latencyAlpha)*prev
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, fieldAvgLatency, int64(math.Round(next)))
			pipe.HIncrBy(ctx, key, fieldSuccesses, 1)
			pipe.HSet(ctx, key, fieldLastInvoked, time.Now().UTC().Format(time.RFC3339Nano))
			return nil
		})
		return err
	}, key)
	if err != nil {
		p.log.Warn().Err(err).Str("tool", toolID).Msg("failed to record success")
	}
}

// RecordFailure counts a failed call under its error kind.
func (p *Profiler) RecordFailure(ctx context.Context, toolID string, kind ErrorKind) {
	key := p.getProfileKey(toolID)
	if kind == "" {
		kind = TransientServiceError
	}

	pipe := p.rdb.Pipeline()
	pipe.HIncrBy(ctx, key, fieldFailures, 1)
	pipe.HIncrBy(ctx, key, fieldFailurePrefix+string(kind), 1)
	pipe.HSet(ctx, key, fieldLastInvoked, time.Now().UTC().Format(time.RFC3339Nano))
	if _, err := pipe.Exec(ctx); err != nil {
		p.log.Warn().Err(err).Str("tool", toolID).Msg("failed to record failure")
	}
}
