package main

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"flag"
	"log"
	"time"

	gnotify "github.com/blong14/scratch/internal/notify"
	gscratch "github.com/blong14/scratch/internal/scratch"
)

var blocks = flag.Int("blocks", 16, "number of blocks to publish")

// buildBlock assembles a fake raw block inside a scratch frame and returns
// its hash and bytes. The frame closes on return, so both are copied out.
func buildBlock(arena *gscratch.Arena, height int) ([]byte, []byte) {
	if !arena.OpenFrame(4096, 2) {
		log.Fatalf("block %d: scratch space exhausted", height)
	}
	defer arena.CloseFrame()

	raw := arena.Alloc(1024)
	binary.BigEndian.PutUint64(raw, uint64(height))
	binary.BigEndian.PutUint64(raw[8:], uint64(time.Now().UnixNano()))
	sum := sha256.Sum256(raw)

	hash := make([]byte, len(sum))
	copy(hash, sum[:])
	out := make([]byte, len(raw))
	copy(out, raw)
	return hash, out
}

func main() {
	flag.Parse()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bridge := gnotify.FromEnv()
	if bridge == nil {
		log.Fatal("no NOTIFY_PUB* endpoints configured")
	}
	if err := bridge.Init(ctx); err != nil {
		log.Fatal(err)
	}

	arena := gscratch.New(1 << 20)
	start := time.Now()
	for height := 0; height < *blocks; height++ {
		hash, raw := buildBlock(arena, height)
		bridge.UpdatedBlockTip(ctx, hash, raw)
	}
	log.Printf("published %d blocks in %s\n", *blocks, time.Since(start))

	if err := bridge.Close(ctx); err != nil {
		log.Println(err)
	}
	arena.Free()
}
