package notify

import (
	"context"

	genv "github.com/blong14/scratch/internal/environment"
	gerrors "github.com/blong14/scratch/internal/errors"
	glog "github.com/blong14/scratch/internal/logging"
)

// Interface fans node events out to its notifiers. A notifier whose publish
// fails is shut down and dropped; the rest keep receiving events.
type Interface struct {
	notifiers []Notifier
}

func New(notifiers ...Notifier) *Interface {
	return &Interface{notifiers: notifiers}
}

// FromEnv builds an Interface from NOTIFY_PUB* environment variables,
// one publisher per configured notifier type. Returns nil when nothing
// is configured.
func FromEnv() *Interface {
	var notifiers []Notifier
	for _, kind := range Kinds() {
		addr, ok := genv.NotifyAddr(kind.String())
		if !ok || addr == "" {
			continue
		}
		notifiers = append(notifiers, NewPublisher(kind, addr))
	}
	if len(notifiers) == 0 {
		return nil
	}
	return New(notifiers...)
}

// Init brings every notifier up. On the first failure the already
// initialized notifiers are closed and the error is returned.
func (i *Interface) Init(ctx context.Context) error {
	glog.Track("%T initialize notification interface", i)
	for n, notifier := range i.notifiers {
		if err := notifier.Init(ctx); err != nil {
			glog.Track("%T notifier %s failed addr=%s", i, notifier.Type(), notifier.Addr())
			errs := gerrors.Append(nil, err)
			for _, up := range i.notifiers[:n] {
				errs = gerrors.Append(errs, up.Close(ctx))
			}
			return errs.ErrorOrNil()
		}
		glog.Track("%T notifier %s ready addr=%s", i, notifier.Type(), notifier.Addr())
	}
	return nil
}

// Close shuts every notifier down, aggregating errors.
func (i *Interface) Close(ctx context.Context) error {
	glog.Track("%T shutdown notification interface", i)
	var errs *gerrors.Error
	for _, notifier := range i.notifiers {
		errs = gerrors.Append(errs.ErrorOrNil(), notifier.Close(ctx))
	}
	i.notifiers = nil
	return errs.ErrorOrNil()
}

// Notifiers reports the currently active notifiers.
func (i *Interface) Notifiers() []Notifier {
	out := make([]Notifier, len(i.notifiers))
	copy(out, i.notifiers)
	return out
}

// UpdatedBlockTip publishes the new tip to hash-block and raw-block
// notifiers.
func (i *Interface) UpdatedBlockTip(ctx context.Context, hash, raw []byte) {
	i.dispatch(ctx, map[EventKind]*Event{
		HashBlock: {Kind: HashBlock, Hash: hash},
		RawBlock:  {Kind: RawBlock, Hash: hash, Raw: raw},
	})
}

// TransactionAddedToMempool publishes the transaction to hash-tx and raw-tx
// notifiers.
func (i *Interface) TransactionAddedToMempool(ctx context.Context, hash, raw []byte) {
	i.dispatch(ctx, map[EventKind]*Event{
		HashTx: {Kind: HashTx, Hash: hash},
		RawTx:  {Kind: RawTx, Hash: hash, Raw: raw},
	})
}

func (i *Interface) dispatch(ctx context.Context, events map[EventKind]*Event) {
	keep := i.notifiers[:0]
	for _, notifier := range i.notifiers {
		event, ok := events[notifier.Type()]
		if !ok {
			keep = append(keep, notifier)
			continue
		}
		if err := notifier.Notify(ctx, event); err != nil {
			glog.Track("%T dropping notifier %s: %s", i, notifier.Type(), err)
			if cerr := notifier.Close(ctx); cerr != nil {
				glog.Track("%T close notifier %s: %s", i, notifier.Type(), cerr)
			}
			continue
		}
		keep = append(keep, notifier)
	}
	i.notifiers = keep
}
