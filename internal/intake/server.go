package intake

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gcloudgt/contacto/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamName    = "contacto_inquiries"
	subjectPrefix = "contacto.inquiries"
	retention     = 365 * 24 * time.Hour
	readyTimeout  = 4 * time.Second
	drainTimeout  = 2 * time.Second
	shutdownGrace = 5 * time.Second
)

var log = logger.Named("intake")

// subjectFor returns the subject an inquiry is published on, keyed by its
// project type so consumers can filter, e.g. "contacto.inquiries.web".
func subjectFor(projectType string) string {
	return fmt.Sprintf("%s.%s", subjectPrefix, projectType)
}

// startEmbedded starts an in-process NATS server with file-backed JetStream
// in dataDir. It never opens a network port.
func startEmbedded(dataDir string) (*server.Server, error) {
	log.Debug("starting embedded NATS in %s", dataDir)

	ns, err := server.NewServer(&server.Options{
		JetStream:  true,
		StoreDir:   dataDir,
		DontListen: true,
		NoSigs:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating NATS server: %w", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(readyTimeout) {
		ns.Shutdown()
		return nil, errors.New("nats server failed to start within timeout")
	}
	log.Debug("embedded NATS ready")
	return ns, nil
}

// setupStream creates or updates the inquiry stream. Duplicate publishes of
// the same inquiry ID within the window are dropped by the server.
func setupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       streamName,
		Subjects:   []string{subjectPrefix + ".>"},
		Storage:    jetstream.FileStorage,
		MaxAge:     retention,
		Duplicates: 2 * time.Minute,
	})
}

// shutdown drains the connection and stops the server, bounding both waits so
// a wedged server cannot hang process exit.
func shutdown(nc *nats.Conn, ns *server.Server) error {
	if nc != nil {
		done := make(chan error, 1)
		go func() { done <- nc.Drain() }()

		select {
		case err := <-done:
			if err != nil {
				log.Warn("drain failed, forcing close: %v", err)
				nc.Close()
			}
		case <-time.After(drainTimeout):
			log.Warn("drain timed out after %s, forcing close", drainTimeout)
			nc.Close()
		}
	}

	if ns == nil {
		return nil
	}
	ns.Shutdown()

	stopped := make(chan struct{})
	go func() {
		ns.WaitForShutdown()
		close(stopped)
	}()
	select {
	case <-stopped:
		log.Debug("embedded NATS stopped")
		return nil
	case <-time.After(shutdownGrace):
		return errors.New("nats server shutdown timed out")
	}
}
