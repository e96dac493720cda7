// Package orchestrator compiles the per-request pipeline into an eino graph
// and runs every incoming message through it exactly once. The pipeline never
// surfaces an error to the caller; any defect turns into an apology reply on
// top of whatever partial trace the stages produced before failing.
package orchestrator

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
	nodex "github.com/tanpawarit/evo-commerce-agent/agent/nodes"
)

const apologyMessage = "I'm sorry, I encountered an error processing your request. Please try again."

type Orchestrator struct {
	models contractx.Registry
	tools  contractx.ToolRegistry

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	now func() time.Time
}

func New(models contractx.Registry, tools contractx.ToolRegistry) (*Orchestrator, error) {
	if models == nil {
		return nil, errors.New("model registry is required")
	}
	if tools == nil {
		return nil, errors.New("tool registry is required")
	}

	o := &Orchestrator{
		models: models,
		tools:  tools,
		now:    time.Now,
	}

	graphRunner, err := o.compileHandleMessageGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// HandleMessage runs one utterance through the pipeline. The returned result
// always carries a trace, even when a stage fails or panics partway through.
func (o *Orchestrator) HandleMessage(ctx context.Context, text string) (result contractx.Result) {
	requestID := uuid.NewString()
	started := o.now()
	trace := contractx.NewTrace()

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("request_id", requestID).
				Any("panic", r).
				Msg("pipeline panicked")
			trace.FinalMessage = apologyMessage
			result = contractx.Result{Message: apologyMessage, Trace: trace}
		}
	}()

	out, err := o.graphRunner.Invoke(ctx, nodex.GraphInput{
		Utterance: text,
		Now:       started.UTC(),
		Trace:     trace,
	})
	if err != nil {
		log.Error().
			Str("request_id", requestID).
			Err(err).
			Msg("pipeline failed")
		trace.FinalMessage = apologyMessage
		return contractx.Result{Message: apologyMessage, Trace: trace}
	}

	log.Info().
		Str("request_id", requestID).
		Str("intent", string(trace.Intent)).
		Any("tools_called", trace.ToolsCalled).
		Dur("elapsed", o.now().Sub(started)).
		Msg("message handled")

	return contractx.Result{Message: out.Message, Trace: trace}
}
