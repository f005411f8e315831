package engine

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
)

// Command is a request processed by a Worker.
type Command interface {
	isCommand()
}

// SetGame hands a game to the worker. The sender must not touch it again.
type SetGame struct {
	Game *Game
}

// Perft requests a divide of the owned game to Depth plies.
type Perft struct {
	Depth int
}

func (SetGame) isCommand() {}
func (Perft) isCommand()   {}

// Worker owns one Game at a time and runs commands against it sequentially.
type Worker struct {
	mu     *sync.Mutex
	out    io.Writer
	logger *log.Logger
	game   *Game
}

// WorkerOption configures a Worker.
type WorkerOption func(*Worker)

// WithLogger sets the diagnostics logger. By default nothing is logged.
func WithLogger(l *log.Logger) WorkerOption {
	return func(w *Worker) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithOutputLock makes the worker hold mu while writing, so its lines do not
// interleave with other writers of the same stream.
func WithOutputLock(mu *sync.Mutex) WorkerOption {
	return func(w *Worker) {
		if mu != nil {
			w.mu = mu
		}
	}
}

// NewWorker creates a worker writing protocol lines to out. It starts with
// the initial position.
func NewWorker(out io.Writer, opts ...WorkerOption) *Worker {
	w := &Worker{
		mu:     &sync.Mutex{},
		out:    out,
		logger: log.New(io.Discard, "", 0),
		game:   NewGame(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run processes commands until cmds is closed (nil) or ctx is cancelled
// (ctx.Err()). Cancellation is observed between commands.
func (w *Worker) Run(ctx context.Context, cmds <-chan Command) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd, ok := <-cmds:
			if !ok {
				return nil
			}
			if err := w.handle(cmd); err != nil {
				w.logger.Printf("worker: %v", err)
				w.printf("info string %v\n", err)
			}
		}
	}
}

func (w *Worker) handle(cmd Command) error {
	switch c := cmd.(type) {
	case SetGame:
		if c.Game == nil {
			return fmt.Errorf("set game: nil game")
		}
		w.game = c.Game
		w.logger.Printf("worker: game set, fen %s", w.game.FEN())
	case Perft:
		if c.Depth < 1 {
			return fmt.Errorf("perft: depth must be positive, got %d", c.Depth)
		}
		w.perft(c.Depth)
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
	return nil
}

func (w *Worker) perft(depth int) {
	w.logger.Printf("worker: perft depth %d on %s", depth, w.game.FEN())
	entries, total := Divide(w.game, depth)

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, e := range entries {
		fmt.Fprintf(w.out, "%s: %d\n", e.Move, e.Nodes)
	}
	fmt.Fprintf(w.out, "\nNodes searched: %d\n\n", total)
}

func (w *Worker) printf(format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, format, args...)
}
