// Package notify forwards node events (new blocks, mempool transactions) to
// remote subscribers. It is glue between event callbacks and a transport
// send primitive; the computations producing the events do not depend on it.
package notify

import "fmt"

type EventKind int

const (
	HashBlock EventKind = iota
	HashTx
	RawBlock
	RawTx
)

func (k EventKind) String() string {
	switch k {
	case HashBlock:
		return "pubhashblock"
	case HashTx:
		return "pubhashtx"
	case RawBlock:
		return "pubrawblock"
	case RawTx:
		return "pubrawtx"
	default:
		return "unknown"
	}
}

// Kinds lists every notifier type a bridge can be configured with.
func Kinds() []EventKind {
	return []EventKind{HashBlock, HashTx, RawBlock, RawTx}
}

// Event is a single notification. Seq is stamped per notifier at publish
// time so a subscriber can detect dropped messages.
type Event struct {
	Kind EventKind
	Hash []byte
	Raw  []byte
	Seq  uint64
}

func (e *Event) String() string {
	return fmt.Sprintf("%s %x seq=%d", e.Kind, e.Hash, e.Seq)
}
