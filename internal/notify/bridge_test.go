package notify_test

import (
	"context"
	"errors"
	"testing"

	gnotify "github.com/blong14/scratch/internal/notify"
)

// fakeNotifier implements gnotify.Notifier
type fakeNotifier struct {
	kind      gnotify.EventKind
	events    []*gnotify.Event
	initErr   error
	notifyErr error
	closeErr  error
	closed    bool
}

func (f *fakeNotifier) Type() gnotify.EventKind { return f.kind }

func (f *fakeNotifier) Addr() string { return "fake" }

func (f *fakeNotifier) Init(_ context.Context) error { return f.initErr }

func (f *fakeNotifier) Close(_ context.Context) error {
	f.closed = true
	return f.closeErr
}

func (f *fakeNotifier) Notify(_ context.Context, event *gnotify.Event) error {
	if f.notifyErr != nil {
		return f.notifyErr
	}
	f.events = append(f.events, event)
	return nil
}

func TestInterface_UpdatedBlockTip(t *testing.T) {
	t.Parallel()
	// given
	ctx := context.Background()
	hashed := &fakeNotifier{kind: gnotify.HashBlock}
	raw := &fakeNotifier{kind: gnotify.RawBlock}
	tx := &fakeNotifier{kind: gnotify.HashTx}
	bridge := gnotify.New(hashed, raw, tx)
	if err := bridge.Init(ctx); err != nil {
		t.Fatal(err)
	}

	// when
	bridge.UpdatedBlockTip(ctx, []byte("head"), []byte("block-bytes"))

	// then
	if len(hashed.events) != 1 || string(hashed.events[0].Hash) != "head" {
		t.Errorf("hash-block notifier missed the tip %v", hashed.events)
	}
	if len(raw.events) != 1 || string(raw.events[0].Raw) != "block-bytes" {
		t.Errorf("raw-block notifier missed the tip %v", raw.events)
	}
	if len(tx.events) != 0 {
		t.Errorf("tx notifier should not see block events %v", tx.events)
	}
}

func TestInterface_TransactionAddedToMempool(t *testing.T) {
	t.Parallel()
	// given
	ctx := context.Background()
	hashed := &fakeNotifier{kind: gnotify.HashTx}
	raw := &fakeNotifier{kind: gnotify.RawTx}
	bridge := gnotify.New(hashed, raw)

	// when
	bridge.TransactionAddedToMempool(ctx, []byte("txid"), []byte("tx-bytes"))

	// then
	if len(hashed.events) != 1 || hashed.events[0].Kind != gnotify.HashTx {
		t.Errorf("hash-tx notifier missed the transaction %v", hashed.events)
	}
	if len(raw.events) != 1 || string(raw.events[0].Raw) != "tx-bytes" {
		t.Errorf("raw-tx notifier missed the transaction %v", raw.events)
	}
}

func TestInterface_DropsFailedNotifier(t *testing.T) {
	t.Parallel()
	// given
	ctx := context.Background()
	flaky := &fakeNotifier{kind: gnotify.HashBlock, notifyErr: errors.New("send failed")}
	steady := &fakeNotifier{kind: gnotify.HashBlock}
	bridge := gnotify.New(flaky, steady)

	// when
	bridge.UpdatedBlockTip(ctx, []byte("head"), nil)

	// then
	if !flaky.closed {
		t.Error("failed notifier should be closed")
	}
	if got := len(bridge.Notifiers()); got != 1 {
		t.Errorf("want 1 active notifier got %d", got)
	}
	bridge.UpdatedBlockTip(ctx, []byte("next"), nil)
	if len(steady.events) != 2 {
		t.Errorf("surviving notifier should keep receiving, got %d", len(steady.events))
	}
}

func TestInterface_Init_Unwinds(t *testing.T) {
	t.Parallel()
	// given
	ctx := context.Background()
	first := &fakeNotifier{kind: gnotify.HashBlock}
	second := &fakeNotifier{kind: gnotify.RawBlock, initErr: errors.New("dial failed")}
	bridge := gnotify.New(first, second)

	// when
	err := bridge.Init(ctx)

	// then
	if err == nil {
		t.Error("init should fail as a unit")
	}
	if !first.closed {
		t.Error("already initialized notifiers should be closed")
	}
}

func TestInterface_Close_Aggregates(t *testing.T) {
	t.Parallel()
	// given
	ctx := context.Background()
	first := &fakeNotifier{kind: gnotify.HashBlock, closeErr: errors.New("first close")}
	second := &fakeNotifier{kind: gnotify.RawTx, closeErr: errors.New("second close")}
	bridge := gnotify.New(first, second)

	// when
	err := bridge.Close(ctx)

	// then
	if err == nil {
		t.Fatal("close should surface notifier errors")
	}
	if got := len(bridge.Notifiers()); got != 0 {
		t.Errorf("want 0 notifiers after close got %d", got)
	}
}

func TestFromEnv(t *testing.T) {
	// given
	t.Setenv("NOTIFY_PUBHASHBLOCK", "localhost:8080")
	t.Setenv("NOTIFY_PUBRAWTX", "localhost:8081")

	// when
	bridge := gnotify.FromEnv()

	// then
	if bridge == nil {
		t.Fatal("bridge should be configured")
	}
	notifiers := bridge.Notifiers()
	if len(notifiers) != 2 {
		t.Fatalf("want 2 notifiers got %d", len(notifiers))
	}
	if notifiers[0].Type() != gnotify.HashBlock || notifiers[0].Addr() != "localhost:8080" {
		t.Errorf("unexpected notifier %s %s", notifiers[0].Type(), notifiers[0].Addr())
	}
	if notifiers[1].Type() != gnotify.RawTx || notifiers[1].Addr() != "localhost:8081" {
		t.Errorf("unexpected notifier %s %s", notifiers[1].Type(), notifiers[1].Addr())
	}
}

func TestFromEnv_Unconfigured(t *testing.T) {
	// given no NOTIFY_PUB* variables
	t.Setenv("NOTIFY_PUBHASHBLOCK", "")

	// when/then
	if bridge := gnotify.FromEnv(); bridge != nil {
		t.Error("bridge should be nil when nothing is configured")
	}
}
