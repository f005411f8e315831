package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"qchess/board"
	"qchess/diagram"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	size := flag.Int("size", 400, "Board edge in pixels")
	outPath := flag.String("o", "", "Output file (defaults to stdout)")
	coords := flag.Bool("coords", true, "Draw file and rank labels")
	flip := flag.Bool("flip", false, "Draw the board from Black's side")
	flag.Parse()

	p, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating %s: %v\n", *outPath, err)
			os.Exit(2)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	opts := diagram.Options{Size: *size, Coordinates: *coords, Flip: *flip}
	if err := diagram.Write(w, p, opts); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "writing diagram: %v\n", err)
		os.Exit(1)
	}
}
