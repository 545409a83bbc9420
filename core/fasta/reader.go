// core/fasta/reader.go
package fasta

import (
	"context"
)

// Record is one parsed FASTA sequence.
type Record struct {
	ID  string
	Seq []byte
}

// StreamRecordsCtxPath is the ctx-aware channel wrapper around StreamPathCtx.
// Open errors for non-stdin paths are reported immediately; scan-time errors
// terminate the stream silently, matching the callback API's behavior when
// the consumer only ranges over the channel.
func StreamRecordsCtxPath(ctx context.Context, path string) (<-chan Record, error) {
	if path != "-" {
		rc, err := openReader(path)
		if err != nil {
			return nil, err
		}
		_ = rc.Close()
	}

	out := make(chan Record, 8)
	go func() {
		defer close(out)
		_ = StreamPathCtx(ctx, path, func(r Record) error {
			out <- r
			return nil
		})
	}()
	return out, nil
}

// StreamRecords is the legacy helper using a background context.
func StreamRecords(path string) (<-chan Record, error) {
	return StreamRecordsCtxPath(context.Background(), path)
}
