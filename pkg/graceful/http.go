package graceful

import (
	"context"
	"net/http"
)

// WaitToShutdownHTTP blocks until termination and then shuts the HTTP server
// down, confirming for the named subscriber once the server has stopped.
func (s *Shutdown) WaitToShutdownHTTP(server *http.Server, subscriber string) error {
	shutdown, done := s.ShutdownSignal(subscriber)
	defer close(done)

	<-shutdown

	s.mu.Lock()
	timeout := s.Timeout
	s.mu.Unlock()

	if timeout == 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return server.Shutdown(ctx)
}
