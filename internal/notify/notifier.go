package notify

import (
	"context"
	"errors"
	"net/rpc"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	ginternal "github.com/blong14/scratch/internal"
	genv "github.com/blong14/scratch/internal/environment"
	gerrors "github.com/blong14/scratch/internal/errors"
	grpc "github.com/blong14/scratch/internal/io/rpc"
	glimiter "github.com/blong14/scratch/internal/limiter"
	glog "github.com/blong14/scratch/internal/logging"
)

var ErrNotInitialized = gerrors.NewGError(errors.New("notifier not initialized"))

type Notifier interface {
	Type() EventKind
	Addr() string
	Init(ctx context.Context) error
	Close(ctx context.Context) error
	Notify(ctx context.Context, event *Event) error
}

// Publisher implements Notifier over an rpc connection to a subscriber.
type Publisher struct {
	kind   EventKind
	addr   string
	client *rpc.Client
	limit  glimiter.RateLimiter
	tracer trace.Tracer
	seq    uint64
}

var _ Notifier = &Publisher{}

func NewPublisher(kind EventKind, addr string) *Publisher {
	return &Publisher{
		kind:   kind,
		addr:   addr,
		limit:  glimiter.HighWaterMark(genv.NotifyHWM()),
		tracer: otel.Tracer("publisher"),
	}
}

func (p *Publisher) Type() EventKind {
	return p.kind
}

func (p *Publisher) Addr() string {
	return p.addr
}

func (p *Publisher) Init(_ context.Context) error {
	client, err := grpc.Client(p.addr)
	if err != nil {
		return gerrors.NewGError(err)
	}
	p.client = client
	glog.Track("%T %s ready addr=%s", p, p.kind, p.addr)
	return nil
}

func (p *Publisher) Close(_ context.Context) error {
	if p.client == nil {
		return nil
	}
	err := p.client.Close()
	p.client = nil
	return err
}

func (p *Publisher) Notify(ctx context.Context, event *Event) error {
	if p.client == nil {
		return ErrNotInitialized
	}
	ctx, span := ginternal.Trace(
		ctx, p.tracer, "publisher.notify",
		attribute.String("event-kind", event.Kind.String()),
	)
	defer span.End()
	if err := p.limit.Wait(ctx); err != nil {
		return err
	}
	p.seq++
	event.Seq = p.seq
	return gerrors.OnlyError(PublishEvent(p.client, event))
}
