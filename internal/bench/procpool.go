package bench

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/haskel/parafox/internal/strategy"
)

// WorkerCommand is the hidden subcommand a child process is started with.
const WorkerCommand = "worker"

// chunkRequest ships one batch of items to a worker process. Only the
// workload name crosses the boundary; the worker resolves it against its
// own registry.
type chunkRequest struct {
	Workload string
	Offset   int
	Items    []float64
}

type chunkReply struct {
	Processed int
	Err       string
	ErrIndex  int
}

// processPoolExecutor spawns worker_count child processes of this binary
// and feeds them gob-encoded chunks over stdin/stdout pipes. The point is
// to measure realistic inter-process transport cost, so requests are sent
// strictly lockstep per worker with no pipelining.
type processPoolExecutor struct{}

func (e *processPoolExecutor) run(ctx context.Context, w Workload, items []float64, cfg strategy.Config) error {
	// The workload must be resolvable in the child.
	if _, err := LookupWorkload(w.Name); err != nil {
		return fmt.Errorf("process backend requires a registered workload: %w", err)
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("cannot locate own binary: %w", err)
	}

	chunks := make(chan chunkRequest, len(items)/cfg.ChunkSize+1)
	for off := 0; off < len(items); off += cfg.ChunkSize {
		end := off + cfg.ChunkSize
		if end > len(items) {
			end = len(items)
		}
		chunks <- chunkRequest{Workload: w.Name, Offset: off, Items: items[off:end]}
	}
	close(chunks)

	done := make(chan struct{})

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			close(done)
		})
	}

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := runWorkerProcess(ctx, exe, chunks, done); err != nil {
				fail(err)
			}
		}()
	}
	wg.Wait()

	if firstErr == nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return firstErr
}

// runWorkerProcess owns one child process for the duration of a run: start,
// feed chunks lockstep, close stdin, wait.
func runWorkerProcess(ctx context.Context, exe string, chunks <-chan chunkRequest, done <-chan struct{}) error {
	cmd := exec.CommandContext(ctx, exe, WorkerCommand)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("worker stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("worker stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("worker start: %w", err)
	}

	enc := gob.NewEncoder(stdin)
	dec := gob.NewDecoder(stdout)

	var loopErr error
feed:
	for {
		select {
		case req, ok := <-chunks:
			if !ok {
				break feed
			}
			if err := enc.Encode(&req); err != nil {
				loopErr = fmt.Errorf("send chunk at offset %d: %w", req.Offset, err)
				break feed
			}
			var reply chunkReply
			if err := dec.Decode(&reply); err != nil {
				loopErr = fmt.Errorf("receive reply for offset %d: %w", req.Offset, err)
				break feed
			}
			if reply.Err != "" {
				loopErr = fmt.Errorf("item %d: %s", reply.ErrIndex, reply.Err)
				break feed
			}
		case <-done:
			break feed
		case <-ctx.Done():
			loopErr = ctx.Err()
			break feed
		}
	}

	stdin.Close()
	waitErr := cmd.Wait()
	if loopErr != nil {
		return loopErr
	}
	if waitErr != nil && !errors.Is(waitErr, context.Canceled) {
		return fmt.Errorf("worker exited: %w", waitErr)
	}
	return nil
}

// RunWorker is the child-process side of the process backend: a decode loop
// over stdin applying registered workloads chunk by chunk until EOF.
func RunWorker(r io.Reader, w io.Writer) error {
	dec := gob.NewDecoder(r)
	enc := gob.NewEncoder(w)

	for {
		var req chunkRequest
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode chunk: %w", err)
		}

		reply := applyChunk(req)
		if err := enc.Encode(&reply); err != nil {
			return fmt.Errorf("encode reply: %w", err)
		}
	}
}

func applyChunk(req chunkRequest) chunkReply {
	workload, err := LookupWorkload(req.Workload)
	if err != nil {
		return chunkReply{Err: err.Error(), ErrIndex: req.Offset}
	}

	for i, item := range req.Items {
		if _, err := workload.Fn(item); err != nil {
			return chunkReply{
				Processed: i,
				Err:       err.Error(),
				ErrIndex:  req.Offset + i,
			}
		}
	}
	return chunkReply{Processed: len(req.Items)}
}
