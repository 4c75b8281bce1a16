package drift

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SignalGuard scopes interrupt handling to a monitor run: Acquire routes
// SIGINT/SIGTERM to the callback, Release restores whatever disposition was
// active before. Always pair the two, Release via defer.
type SignalGuard struct {
	onSignal func(os.Signal)
	logger   *slog.Logger
	ch       chan os.Signal
}

func NewSignalGuard(onSignal func(os.Signal), logger *slog.Logger) *SignalGuard {
	return &SignalGuard{
		onSignal: onSignal,
		logger:   logger,
	}
}

// Acquire installs the handlers.
func (g *SignalGuard) Acquire() {
	g.ch = make(chan os.Signal, 1)
	signal.Notify(g.ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		for sig := range g.ch {
			g.logger.Info("signal received", "signal", sig.String())
			g.onSignal(sig)
		}
	}()
}

// Release restores the previous signal disposition. signal.Stop guarantees
// no further sends on the channel, so closing it afterwards is safe and
// ends the forwarding goroutine.
func (g *SignalGuard) Release() {
	if g.ch == nil {
		return
	}
	signal.Stop(g.ch)
	close(g.ch)
	g.ch = nil
}
