// Package orchestrator drives the script-run state machine: Idle,
// Running, Cancelling, one run at a time per session.
package orchestrator

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/streamgo-dev/streamgo/internal/builder"
	"github.com/streamgo-dev/streamgo/internal/element"
	"github.com/streamgo-dev/streamgo/internal/render"
	"github.com/streamgo-dev/streamgo/internal/session"
	"github.com/streamgo-dev/streamgo/internal/wire"
)

// UserFunc is the script entrypoint invoked once per run. It appends
// elements under root via b and returns an error to signal a script
// failure.
type UserFunc func(b *builder.Builder, root builder.Site) error

// Orchestrator is the single-consumer serial actor for one session: all
// its state transitions execute on the goroutine running its loop,
// never concurrently with themselves.
type Orchestrator struct {
	sess   *session.Session
	sink   wire.Sink
	userFn UserFunc
	log    *zap.Logger

	requests chan struct{}
	done     chan struct{}

	current atomic.Pointer[render.Context]
}

// New creates an orchestrator bound to one connection's session and
// sink. Run must be called to start its actor loop.
func New(sess *session.Session, sink wire.Sink, userFn UserFunc, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		sess:     sess,
		sink:     sink,
		userFn:   userFn,
		log:      log,
		requests: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Run executes the actor loop until ctx-like shutdown via Close. Callers
// run it on its own goroutine, one per accepted WebSocket connection.
func (o *Orchestrator) Run() {
	for range o.requests {
		o.runOnce()
	}
	close(o.done)
}

// Close tears down the actor: it cancels any in-flight run so a
// connection that's already gone doesn't keep a slow render alive, then
// stops the actor loop once that run (and any it's mid-finishing) drains.
func (o *Orchestrator) Close() {
	o.Stop()
	close(o.requests)
	<-o.done
}

// RequestRerun enqueues a rerun: Idle moves to Running, and a Running
// run moves through Cancelling into a fresh Running. Widget-state
// ingestion must already have happened (the connection handler does
// this synchronously before calling RequestRerun). Multiple pending
// requests coalesce into one, since a later RerunScript's ingested
// state always supersedes an earlier one's.
func (o *Orchestrator) RequestRerun() {
	o.Stop()
	select {
	case o.requests <- struct{}{}:
	default:
	}
}

// Stop cancels the in-flight render, moving Running to Cancelling. It
// is a no-op if no render is in flight.
func (o *Orchestrator) Stop() {
	if ctx := o.current.Load(); ctx != nil {
		ctx.Cancel()
	}
}

func (o *Orchestrator) runOnce() {
	scriptRunID := o.sess.NextScriptRunID()

	if err := o.sink.Send(&wire.ForwardMessage{
		Kind: wire.ForwardNewSession,
		NewSession: &wire.NewSessionPayload{
			SessionID:      o.sess.ID,
			ScriptRunID:    scriptRunID,
			MainScriptPath: "app.py",
			PageScriptHash: o.sess.ActiveScriptHash,
			ScriptRunning:  true,
		},
	}); err != nil {
		o.log.Warn("new session write failed", zap.Error(err))
		return
	}
	if err := o.sink.Send(&wire.ForwardMessage{
		Kind: wire.ForwardSessionStatusChanged,
		SessionStatusChanged: &wire.SessionStatusChangedPayload{
			ScriptIsRunning: true,
			RunOnSave:       false,
		},
	}); err != nil {
		o.log.Warn("status write failed", zap.Error(err))
		return
	}

	ctx := render.New(o.sess.ID, o.sess.ActiveScriptHash, o.sink, []uint32{0})
	o.current.Store(ctx)
	defer o.current.Store(nil)

	main := element.Main()
	root := builder.NewRootSite(main)
	b := builder.New(o.sess)

	userErr := o.invokeUser(b, root)

	// The tree built so far — including the synthetic main block and
	// whatever the user function appended before failing — always
	// renders, so the client sees the partial tree rather than nothing.
	status := wire.FinishedSuccessfully
	if renderErr := element.Render(main, ctx); renderErr != nil {
		if we, ok := renderErr.(*wire.Error); ok && we.Kind == wire.KindTransport {
			o.log.Warn("transport write failed mid-render", zap.Error(renderErr))
			return
		}
		status = wire.FinishedWithCompileError
	} else if userErr != nil {
		o.log.Info("script run failed", zap.String("session_id", o.sess.ID), zap.Error(userErr))
		status = wire.FinishedWithCompileError
	} else if b.Err() != nil {
		o.log.Info("widget collision", zap.String("session_id", o.sess.ID), zap.Error(b.Err()))
		status = wire.FinishedWithCompileError
	} else if ctx.Cancelled() {
		status = wire.FinishedEarlyForRerun
	}

	if err := o.sink.Send(&wire.ForwardMessage{
		Kind:           wire.ForwardScriptFinished,
		ScriptFinished: status,
	}); err != nil {
		o.log.Warn("script finished write failed", zap.Error(err))
	}
}

// invokeUser runs userFn, converting a panic into a UserFunction error
// so a panicking or failing user function still ends in
// ScriptFinished(FinishedWithCompileError) rather than crashing the
// connection.
func (o *Orchestrator) invokeUser(b *builder.Builder, root builder.Site) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = wire.Wrap(wire.KindUserFunction, fmt.Errorf("user function panicked: %v", r))
		}
	}()
	if uerr := o.userFn(b, root); uerr != nil {
		return wire.Wrap(wire.KindUserFunction, uerr)
	}
	return nil
}
