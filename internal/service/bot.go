package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/rocketscienceinc/mnkgame/internal/engine"
	"github.com/rocketscienceinc/mnkgame/internal/entity"
	"github.com/rocketscienceinc/mnkgame/transport/console"
)

const meterName = "github.com/rocketscienceinc/mnkgame/internal/service"

type engineSource struct {
	logger  *slog.Logger
	console *console.Console
	engine  engine.Engine
	name    string

	searchNodes    metric.Int64Counter
	searchCutoffs  metric.Int64Counter
	searchDuration metric.Float64Histogram
}

// NewEngineSource wraps a search engine as a decision source called name.
// The instruments stay no-ops until telemetry is initialized.
func NewEngineSource(logger *slog.Logger, terminal *console.Console, searchEngine engine.Engine, name string) (DecisionSource, error) {
	meter := otel.Meter(meterName)

	nodes, err := meter.Int64Counter("search.nodes",
		metric.WithDescription("game-tree nodes visited"))
	if err != nil {
		return nil, fmt.Errorf("create search.nodes counter: %w", err)
	}

	cutoffs, err := meter.Int64Counter("search.cutoffs",
		metric.WithDescription("alpha-beta cutoffs taken"))
	if err != nil {
		return nil, fmt.Errorf("create search.cutoffs counter: %w", err)
	}

	duration, err := meter.Float64Histogram("search.duration",
		metric.WithDescription("time spent choosing a move"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("create search.duration histogram: %w", err)
	}

	return &engineSource{
		logger:         logger.With("component", "engine-source", "engine", name),
		console:        terminal,
		engine:         searchEngine,
		name:           name,
		searchNodes:    nodes,
		searchCutoffs:  cutoffs,
		searchDuration: duration,
	}, nil
}

func (that *engineSource) Name() string {
	return that.name
}

func (that *engineSource) Choose(pos *entity.Position, mark entity.Mark) (entity.Coordinate, error) {
	result := that.engine.Search(pos, mark)

	that.console.Printf("%s plays at %v (%d)\n", that.name, result.Move, result.Score)
	switch {
	case engine.Winning(result.Score):
		that.console.Printf("You'll lose!\n")
	case engine.Losing(result.Score):
		that.console.Printf("You should win...\n")
	}

	that.record(result, mark)

	return result.Move, nil
}

func (that *engineSource) record(result engine.Result, mark entity.Mark) {
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String("engine", that.name),
		attribute.String("mark", mark.String()),
	)

	that.searchNodes.Add(ctx, result.Stats.Nodes, attrs)
	that.searchCutoffs.Add(ctx, result.Stats.Cutoffs, attrs)
	that.searchDuration.Record(ctx, result.Stats.Elapsed.Seconds(), attrs)

	that.logger.Debug("search finished",
		"move", result.Move.String(),
		"score", result.Score,
		"nodes", result.Stats.Nodes,
		"cutoffs", result.Stats.Cutoffs,
		"elapsed", result.Stats.Elapsed,
	)
}
