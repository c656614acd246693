package backend

import (
	"context"

	"github.com/hupe1980/grovergo/circuit"
	"github.com/hupe1980/grovergo/result"
	"github.com/hupe1980/grovergo/simulator"
)

// Local runs circuits on the in-process state-vector simulator.
type Local struct {
	engine *simulator.Engine
}

// NewLocal wraps a simulator engine as an Executor. A nil engine gets a
// fresh unseeded one.
func NewLocal(engine *simulator.Engine) *Local {
	if engine == nil {
		engine = simulator.New()
	}
	return &Local{engine: engine}
}

// Execute implements Executor.
func (l *Local) Execute(ctx context.Context, c circuit.Circuit, shots int) (result.Distribution, error) {
	dist, err := l.engine.Execute(ctx, c, shots)
	if err != nil {
		return nil, NewExecutionError(l.Name(), nil, err)
	}
	return dist, nil
}

// Name implements Executor.
func (l *Local) Name() string { return l.engine.Name() }
