package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"rps_game/internal/domain"
	"rps_game/internal/logger"
	"rps_game/internal/service"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var title = cases.Title(language.English)

const banner = `
 ____        ____        ____
|  _ \  _   |  _ \  _   / ___|
| |_) |(_)  | |_) |(_)  \___ \
|  _ <  _   |  __/  _    ___) |
|_| \_\(_)  |_|    (_)  |____/
`

// Options tune the console loop.
type Options struct {
	// Delay is the pause after each round; zero disables it.
	Delay time.Duration
	// MaxRounds stops the game after that many rounds; zero means no limit.
	MaxRounds int
}

// Game drives a match from a line-oriented reader and writer.
type Game struct {
	match *service.Match
	in    io.Reader
	out   io.Writer
	opts  Options
}

func NewGame(match *service.Match, in io.Reader, out io.Writer, opts Options) *Game {
	return &Game{match: match, in: in, out: out, opts: opts}
}

// Run plays rounds until the player quits, input ends, MaxRounds is reached
// or ctx is cancelled. Cancellation is honoured between rounds and while
// waiting for input.
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(ctx, g.in)

	fmt.Fprint(g.out, banner)
	if err := g.pause(ctx); err != nil {
		return g.finish(nil)
	}

	played := 0
	for {
		if ctx.Err() != nil {
			return g.finish(nil)
		}
		if g.opts.MaxRounds > 0 && played >= g.opts.MaxRounds {
			return g.finish(nil)
		}

		g.printScore()
		g.printMenu()

		var line string
		select {
		case <-ctx.Done():
			return g.finish(nil)
		case l, ok := <-lines:
			if !ok {
				return g.finish(nil)
			}
			line = l
		}

		switch cmd := strings.ToLower(strings.TrimSpace(line)); cmd {
		case "":
			continue
		case "q", "quit", "exit":
			return g.finish(nil)
		case "reset":
			g.match.Reset()
			fmt.Fprintln(g.out, "Score reset.")
			continue
		}

		move, err := domain.ParseMove(line)
		if err != nil {
			fmt.Fprintf(g.out, "Invalid selection %q. Pick 1, 2 or 3.\n", strings.TrimSpace(line))
			continue
		}

		round, err := g.match.Play(move)
		if err != nil {
			return g.finish(err)
		}
		played++
		g.printRound(round)

		if err := g.pause(ctx); err != nil {
			return g.finish(nil)
		}
	}
}

func (g *Game) finish(err error) error {
	fmt.Fprintln(g.out)
	g.printScore()
	fmt.Fprintln(g.out, "Game has ended.")
	sc := g.match.Score()
	logger.Info("game ended", "rounds", sc.Rounds, "wins", sc.Wins, "losses", sc.Losses, "ties", sc.Ties)
	return err
}

func (g *Game) pause(ctx context.Context) error {
	if g.opts.Delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(g.opts.Delay):
		return nil
	}
}

func (g *Game) printScore() {
	fmt.Fprintln(g.out, FormatScore(g.match.Score()))
}

func (g *Game) printMenu() {
	fmt.Fprintln(g.out, "Make your selection:")
	for i, m := range domain.AllMoves {
		fmt.Fprintf(g.out, "  %d) %s %s\n", i+1, m.Symbol(), title.String(string(m)))
	}
	fmt.Fprint(g.out, "(reset, quit) > ")
}

func (g *Game) printRound(r domain.Round) {
	fmt.Fprintln(g.out, FormatRound(r))
}

// FormatScore renders the one-line score panel.
func FormatScore(sc service.Score) string {
	return fmt.Sprintf("You: %d | Computer: %d | Ties: %d | Rounds: %d | %s",
		sc.Wins, sc.Losses, sc.Ties, sc.Rounds, sc.Message)
}

// FormatRound renders a round as a small table.
func FormatRound(r domain.Round) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6s | %-8s | %s\n", "You", "Computer", "Result")
	fmt.Fprintf(&b, "%-6s | %-8s | %s", r.HumanMove().Symbol(), r.OpponentMove().Symbol(), resultText(r.Outcome()))
	return b.String()
}

func resultText(o domain.Outcome) string {
	switch o {
	case domain.OutcomeWinner:
		return "🎉 - You're the Winner"
	case domain.OutcomeLoser:
		return "😭 - You Lost"
	case domain.OutcomeDraw:
		return "😐 - Draw"
	}
	return "Unknown"
}

// readLines feeds lines from r into a channel that closes on EOF or error.
// A goroutine blocked inside Read (a terminal) stays parked until the next line.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
			logger.Warn("input read failed", "error", err)
		}
	}()
	return ch
}
