package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"damas/agent"
	"damas/config"
	"damas/engine"
	"damas/experiments"
	"damas/game"
	"damas/gamemaster"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "play":
		err = runPlay(cfg, os.Args[2:], os.Stdin, os.Stdout)
	case "match":
		err = runMatch(cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", os.Args[1])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: damas play [-start red|blue] [-seed N] [-size N]")
	fmt.Fprintln(os.Stderr, "       damas match [-games N] [-seed N] [-turns N] [-out DIR]")
}

// setup applies the log level and resolves the seed once flags are parsed.
func setup(cfg config.Config) (uint64, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	level, err := cfg.Level()
	if err != nil {
		return 0, err
	}
	zerolog.SetGlobalLevel(level)

	seed, generated := agent.ResolveSeed(cfg.Seed)
	if generated {
		log.Info().Msgf("using seed %d", seed)
	}
	return seed, nil
}

func runPlay(cfg config.Config, args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	fs.StringVar(&cfg.StartingPlayer, "start", cfg.StartingPlayer, "Color moving first (red|blue)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Agent seed, 0 for a random one")
	fs.IntVar(&cfg.BoardSize, "size", cfg.BoardSize, "Board dimension")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seed, err := setup(cfg)
	if err != nil {
		return err
	}

	board, err := game.NewBoardStartingWith(cfg.BoardSize, cfg.Starting())
	if err != nil {
		return err
	}
	session := gamemaster.NewSession(board, game.Red,
		agent.NewHeuristic(agent.WithSeed(seed)),
		engine.WithSelector(agent.NewSelector(seed+1)),
	)
	board, getUpdate := session.Init()

	scanner := bufio.NewScanner(in)
	for {
		for u, ok := getUpdate(); ok; u, ok = getUpdate() {
			if u.Player != session.Human() {
				fmt.Fprintf(out, "%s plays %s\n", u.Player, u.Move)
			}
		}
		fmt.Fprintln(out, board)

		if board.GameOver() {
			fmt.Fprintf(out, "game over, winner: %s\n", board.Winner())
			return nil
		}
		if board.CurrentPlayer() != session.Human() {
			fmt.Fprintln(out, "agent has no move, you win")
			return nil
		}

		fmt.Fprintf(out, "%s to move (e.g. 5,0 4,1): ", session.Human())
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return nil
		}

		from, to, err := game.ParseMove(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		move, err := session.Resolve(from, to)
		if err == nil {
			err = session.Play(move)
		}
		switch {
		case errors.Is(err, gamemaster.ErrIllegalMove):
			fmt.Fprintln(out, err)
		case err != nil:
			return err
		}
	}
}

func runMatch(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	fs.IntVar(&cfg.Games, "games", cfg.Games, "Games per matchup")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Base seed, 0 for a random one")
	fs.IntVar(&cfg.MaxTurns, "turns", cfg.MaxTurns, "Turns before a game is a draw")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Records directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seed, err := setup(cfg)
	if err != nil {
		return err
	}

	dir, err := experiments.HeuristicVsRandom(seed,
		experiments.WithGames(cfg.Games),
		experiments.WithMaxTurns(cfg.MaxTurns),
		experiments.WithOutputDir(cfg.OutputDir),
		experiments.WithBoardSize(cfg.BoardSize),
	)
	if err != nil {
		return err
	}
	log.Info().Msgf("records written to %s", dir)
	return nil
}
