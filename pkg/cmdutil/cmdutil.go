package cmdutil

import (
	"os"
	"os/signal"
	"syscall"
)

// InterruptChan returns a channel that is closed when the process
// receives SIGINT or SIGTERM. Closing, instead of sending, lets any
// number of goroutines observe the shutdown signal.
func InterruptChan() <-chan struct{} {
	out := make(chan struct{})

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		close(out)
	}()

	return out
}
