package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/go-mclib/mcserver/internal/sysutil"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// AcceptLoop binds a single TCP listener and spawns one worker goroutine
// per accepted connection (§4.6). It is single-threaded itself; all work
// beyond accept() happens on worker goroutines.
type AcceptLoop struct {
	state   *State
	limiter *rate.Limiter
}

// NewAcceptLoop builds a loop that allows up to burst connections in a
// burst, refilling at connRate connections/sec — a defensive ceiling on
// connection churn, not a per-player gameplay limit.
func NewAcceptLoop(state *State, connRate float64, burst int) *AcceptLoop {
	return &AcceptLoop{
		state:   state,
		limiter: rate.NewLimiter(rate.Limit(connRate), burst),
	}
}

// Run binds addr and accepts connections until ctx is canceled.
func (a *AcceptLoop) Run(ctx context.Context, addr string) error {
	lc := net.ListenConfig{Control: sysutil.Control}
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", addr, err)
	}
	defer listener.Close()

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	a.state.Logger.Info("accept loop started", zap.String("addr", addr))

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if isTemporary(err) {
				continue
			}
			return fmt.Errorf("server: accept: %w", err)
		}

		if !a.limiter.Allow() {
			a.state.Logger.Warn("connection rejected by rate limiter", zap.String("remote", conn.RemoteAddr().String()))
			conn.Close()
			continue
		}

		w := NewWorker(a.state, conn)
		go w.Run()
	}
}

// isTemporary reports whether a failed accept() is worth retrying rather
// than tearing down the loop (e.g. a transient EMFILE).
func isTemporary(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Temporary()
}
