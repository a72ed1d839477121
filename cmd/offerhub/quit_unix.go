//go:build !windows

package main

import (
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// registerQuitHandler kills p on SIGQUIT instead of letting the runtime
// dump goroutines over the alternate screen. Kill makes the program's Run
// restore the terminal and return tea.ErrProgramKilled. The returned func
// stops listening.
func registerQuitHandler(p killer, log *zap.Logger) (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, syscall.SIGQUIT)
	go func() {
		select {
		case <-sigs:
			log.Warn("SIGQUIT received, stopping")
			p.Kill()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
