package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"qchess/board"
	"qchess/engine"
)

func main() {
	debug := flag.Bool("debug", false, "Log diagnostics to stderr")
	flag.Parse()

	logger := log.New(os.Stderr, "qchess: ", log.Ltime|log.Lmicroseconds)
	uciLoop(os.Stdin, os.Stdout, logger, *debug)
}

type uciSession struct {
	mu    sync.Mutex
	out   io.Writer
	debug *switchWriter
	dlog  *log.Logger // writes through debug
	game  *engine.Game
	cmds  chan engine.Command
}

// switchWriter forwards to w only while on is set. "debug on|off" flips it
// for the session and the worker alike.
type switchWriter struct {
	on atomic.Bool
	w  io.Writer
}

func (sw *switchWriter) Write(b []byte) (int, error) {
	if !sw.on.Load() {
		return len(b), nil
	}
	return sw.w.Write(b)
}

// uciLoop reads UCI commands from in until quit or end of input. Replies go
// to out; "go perft" runs on a worker goroutine that shares out.
func uciLoop(in io.Reader, out io.Writer, logger *log.Logger, debug bool) {
	sw := &switchWriter{w: logger.Writer()}
	sw.on.Store(debug)
	s := &uciSession{
		out:   out,
		debug: sw,
		dlog:  log.New(sw, logger.Prefix(), logger.Flags()),
		game:  engine.NewGame(),
		cmds:  make(chan engine.Command, 16),
	}

	worker := engine.NewWorker(out, engine.WithOutputLock(&s.mu), engine.WithLogger(s.dlog))
	done := make(chan error, 1)
	go func() { done <- worker.Run(context.Background(), s.cmds) }()
	defer func() {
		close(s.cmds)
		if err := <-done; err != nil {
			logger.Printf("worker: %v", err)
		}
	}()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		s.debugf("< %s", line)
		switch strings.ToLower(tokens[0]) {
		case "uci":
			s.println("id name qchess")
			s.println("id author qchess developers")
			s.println("uciok")
		case "debug":
			if len(tokens) > 1 {
				s.debug.on.Store(strings.ToLower(tokens[1]) == "on")
			}
		case "isready":
			s.println("readyok")
		case "ucinewgame":
			s.game = engine.NewGame()
		case "position":
			s.position(tokens[1:])
		case "go":
			s.goCommand(tokens[1:])
		case "d":
			s.println(s.game.Position().String())
			s.println("Fen:", s.game.FEN())
		case "stop":
			// nothing runs that can be stopped
		case "quit":
			return
		default:
			s.println("info string unknown command", tokens[0])
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Printf("reading input: %v", err)
	}
}

// position handles "position startpos|fen <fields> [moves ...]". The whole
// command is rejected if any part fails.
func (s *uciSession) position(args []string) {
	g, err := parsePosition(args)
	if err != nil {
		s.debugf("position rejected: %v", err)
		s.println("info string position rejected:", err)
		return
	}
	s.game = g
	s.debugf("position set: %s", g.FEN())
}

func parsePosition(args []string) (*engine.Game, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing startpos or fen")
	}
	var (
		g    *engine.Game
		rest []string
		err  error
	)
	switch strings.ToLower(args[0]) {
	case "startpos":
		g = engine.NewGame()
		rest = args[1:]
	case "fen":
		end := len(args)
		for i := 1; i < len(args); i++ {
			if strings.ToLower(args[i]) == "moves" {
				end = i
				break
			}
		}
		g, err = engine.NewGameFromFEN(strings.Join(args[1:end], " "))
		if err != nil {
			return nil, err
		}
		rest = args[end:]
	default:
		return nil, fmt.Errorf("unknown position subcommand %q", args[0])
	}

	if len(rest) == 0 {
		return g, nil
	}
	if strings.ToLower(rest[0]) != "moves" {
		return nil, fmt.Errorf("unexpected token %q", rest[0])
	}
	for _, text := range rest[1:] {
		if err := g.PlayUCI(strings.ToLower(text)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (s *uciSession) goCommand(args []string) {
	if len(args) > 0 && strings.ToLower(args[0]) == "perft" {
		if len(args) < 2 {
			s.println("info string Malformed go command option perft")
			return
		}
		depth, err := strconv.Atoi(args[1])
		if err != nil || depth < 1 {
			s.println("info string Malformed go command option; could not convert perft depth")
			return
		}
		s.cmds <- engine.SetGame{Game: s.game.Clone()}
		s.cmds <- engine.Perft{Depth: depth}
		return
	}
	s.println("info string search is not implemented")
	s.println("bestmove", board.NullMove)
}

func (s *uciSession) println(args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, args...)
}

func (s *uciSession) debugf(format string, args ...any) {
	s.dlog.Printf(format, args...)
}
