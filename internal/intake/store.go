// Package intake stores submitted contact inquiries.
//
// Inquiries are appended to a JetStream stream held by an embedded NATS
// server under the configured data directory, so they survive restarts
// without any external service.
package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gcloudgt/contacto/internal/inquiry"
	"github.com/google/uuid"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Inquiry is a stored submission.
type Inquiry struct {
	ID string `json:"id"`
	inquiry.FormData
	CreatedAt time.Time `json:"createdAt"`
}

// Store publishes and replays inquiries.
type Store struct {
	ns       *server.Server
	nc       *nats.Conn
	js       jetstream.JetStream
	stream   jetstream.Stream
	exporter *Exporter
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithExporter writes every saved inquiry through e as well.
func WithExporter(e *Exporter) Option {
	return func(s *Store) { s.exporter = e }
}

// Open starts the embedded server in dataDir and prepares the stream.
func Open(ctx context.Context, dataDir string, opts ...Option) (*Store, error) {
	ns, err := startEmbedded(dataDir)
	if err != nil {
		return nil, err
	}

	nc, err := nats.Connect("", nats.InProcessServer(ns))
	if err != nil {
		_ = shutdown(nil, ns)
		return nil, fmt.Errorf("connecting to embedded NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		_ = shutdown(nc, ns)
		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	stream, err := setupStream(ctx, js)
	if err != nil {
		_ = shutdown(nc, ns)
		return nil, fmt.Errorf("setting up stream: %w", err)
	}

	s := &Store{ns: ns, nc: nc, js: js, stream: stream, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close drains the connection and stops the embedded server.
func (s *Store) Close() error {
	return shutdown(s.nc, s.ns)
}

// Save validates data, assigns an ID and timestamp, and appends it to the
// stream.
func (s *Store) Save(ctx context.Context, data inquiry.FormData) (*Inquiry, error) {
	if err := inquiry.Validate(data); err != nil {
		return nil, err
	}

	inq := &Inquiry{
		ID:        uuid.NewString(),
		FormData:  data,
		CreatedAt: s.now().UTC(),
	}

	payload, err := json.Marshal(inq)
	if err != nil {
		return nil, fmt.Errorf("marshaling inquiry: %w", err)
	}

	subject := subjectFor(data.ProjectType)
	ack, err := s.js.Publish(ctx, subject, payload, jetstream.WithMsgID(inq.ID))
	if err != nil {
		log.Error("publish to %s failed: %v", subject, err)
		return nil, fmt.Errorf("publishing inquiry: %w", err)
	}
	log.Debug("inquiry %s stored at seq=%d", inq.ID, ack.Sequence)

	if s.exporter != nil {
		if _, err := s.exporter.Write(inq); err != nil {
			// The inquiry is already durable in the stream.
			log.Warn("export of inquiry %s failed: %v", inq.ID, err)
		}
	}
	return inq, nil
}

// Submit implements inquiry.Submitter.
func (s *Store) Submit(ctx context.Context, data inquiry.FormData) error {
	_, err := s.Save(ctx, data)
	return err
}

// List returns every stored inquiry, oldest first. Entries that fail to
// decode are skipped and logged.
func (s *Store) List(ctx context.Context) ([]*Inquiry, error) {
	info, err := s.stream.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading stream info: %w", err)
	}
	state := info.State
	if state.Msgs == 0 {
		return nil, nil
	}

	inquiries := make([]*Inquiry, 0, state.Msgs)
	malformed := 0
	for seq := state.FirstSeq; seq <= state.LastSeq; seq++ {
		raw, err := s.stream.GetMsg(ctx, seq)
		if errors.Is(err, jetstream.ErrMsgNotFound) {
			continue // expired or deleted
		}
		if err != nil {
			return nil, fmt.Errorf("reading seq %d: %w", seq, err)
		}

		var inq Inquiry
		if err := json.Unmarshal(raw.Data, &inq); err != nil {
			malformed++
			log.Warn("skipping malformed inquiry at seq=%d: %v", seq, err)
			continue
		}
		inquiries = append(inquiries, &inq)
	}

	if malformed > 0 {
		log.Warn("skipped %d malformed inquiries", malformed)
	}

	sort.SliceStable(inquiries, func(i, j int) bool {
		return inquiries[i].CreatedAt.Before(inquiries[j].CreatedAt)
	})
	return inquiries, nil
}

// Count returns the number of stored inquiries.
func (s *Store) Count(ctx context.Context) (uint64, error) {
	info, err := s.stream.Info(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading stream info: %w", err)
	}
	return info.State.Msgs, nil
}
