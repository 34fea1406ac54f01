package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/battlesnakeio/snake2p/archive"
	"github.com/battlesnakeio/snake2p/config"
	"github.com/battlesnakeio/snake2p/display"
	"github.com/battlesnakeio/snake2p/model"
	"github.com/battlesnakeio/snake2p/session"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "hosts a game and waits for a second player",
	Run: func(c *cobra.Command, args []string) {
		play(func(ctx context.Context, s *session.Session) error {
			return s.Host(ctx)
		})
	},
}

var joinCmd = &cobra.Command{
	Use:   "join [address]",
	Short: "joins a game hosted at address, 127.0.0.1 on the configured port by default",
	Args:  cobra.MaximumNArgs(1),
	Run: func(c *cobra.Command, args []string) {
		addr := ""
		if len(args) > 0 {
			addr = args[0]
		}
		play(func(ctx context.Context, s *session.Session) error {
			return s.Join(ctx, addr)
		})
	},
}

var localCmd = &cobra.Command{
	Use:   "local",
	Short: "plays with two players on one keyboard",
	Run: func(c *cobra.Command, args []string) {
		play(func(ctx context.Context, s *session.Session) error {
			s.PlayLocal()
			return nil
		})
	},
}

func grid() model.Grid {
	return model.Grid{Width: gridWidth, Height: gridHeight}
}

func newSession() (*session.Session, *archive.Recorder) {
	cfg := session.Config{
		Grid:         grid(),
		TickRate:     rate.Limit(tickRate),
		FoodAttempts: config.FoodAttempts,
		ListenAddr:   fmt.Sprintf(":%d", port),
		JoinAddr:     fmt.Sprintf("127.0.0.1:%d", port),
		Port:         port,
	}

	var rec *archive.Recorder
	if recordDir != "" {
		rec = archive.NewRecorder(recordDir, cfg.Grid)
		cfg.Recorder = rec
		log.WithField("dir", recordDir).Info("recording rounds")
	}
	return session.New(cfg), rec
}

// play runs a session in the terminal. start, when given, is applied before
// the terminal is taken over so a failure can still be printed.
func play(start func(ctx context.Context, s *session.Session) error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, rec := newSession()
	if start != nil {
		if err := start(ctx, s); err != nil {
			fatal(err, "unable to start game")
		}
	}

	term, err := display.NewTerminal(grid())
	if err != nil {
		s.Close()
		fatal(err, "unable to open terminal")
	}

	err = s.Run(ctx, term)
	term.Close()
	if rec != nil {
		if cerr := rec.Close(); cerr != nil {
			log.WithError(cerr).Warn("unable to close recording")
		}
	}
	if err != nil {
		fatal(err, "game stopped")
	}
}
