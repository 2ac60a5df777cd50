package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	cfg, err := LoadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := log.New(io.Discard, "reversi: ", log.LstdFlags)
	if cfg.Verbose {
		logger.SetOutput(stderr)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Printf("ui=%s strategy=%s scoring=%s seed=%d", cfg.UI, cfg.Strategy, cfg.Scoring, seed)
	rng := rand.New(rand.NewSource(seed))

	if cfg.UI == "tui" {
		return NewTUI(cfg, rng, logger).Run()
	}

	return NewConsole(stdin, stdout, rng, cfg, logger).Run(cfg.Color)
}
