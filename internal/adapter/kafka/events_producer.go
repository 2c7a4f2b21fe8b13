package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/antiqora/marketplace/internal/core/domain"
	"github.com/antiqora/marketplace/internal/core/port"
	"github.com/antiqora/marketplace/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.ClientEventsProducer = (*ClientEventsProducer)(nil)

// ClientEventsProducer publishes client interaction events keyed by
// session, so one session's events stay ordered within a partition.
type ClientEventsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewClientEventsProducer(
	opts ...ProducerOpt,
) (ClientEventsProducer, error) {
	const op = "NewClientEventsProducer"

	if len(opts) != 2 {
		return ClientEventsProducer{}, fmt.Errorf("%s: %w", op, ErrTooFewOpts)
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ClientEventsProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return ClientEventsProducer{options.cl, options.encoder}, nil
}

func (p ClientEventsProducer) Close() {
	const op = "ClientEventsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p ClientEventsProducer) ProduceEvent(
	ctx context.Context, evt domain.ClientEvent,
) error {
	const op = "ClientEventsProducer.ProduceEvent"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r, err := p.createRecord(evt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (p ClientEventsProducer) createRecord(
	evt domain.ClientEvent,
) (*kgo.Record, error) {
	const op = "ClientEventsProducer.createRecord"

	v, err := p.encoder.Encode(p.toSchema(evt))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &kgo.Record{Key: []byte(evt.SessionID), Value: v}, nil
}

func (p ClientEventsProducer) toSchema(
	evt domain.ClientEvent,
) (s schema.ClientEventV1) {
	s.EventType = evt.EventType.WireValue()
	s.ProductID = evt.ProductID
	s.SessionID = evt.SessionID
	s.OccurredAt = evt.OccurredAt.UTC().Format(time.RFC3339)
	return s
}
