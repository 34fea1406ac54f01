package commands

import (
	"fmt"
	"net/http"
	"os"

	"github.com/battlesnakeio/snake2p/config"
	"github.com/battlesnakeio/snake2p/version"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "snake2p",
	Short: "snake2p is a two player snake game, over the network or on one keyboard",
	Long: `snake2p starts on a menu: press H to host a game, J to join one on
127.0.0.1 or L to play with two players on one keyboard. The host, join and
local commands skip the menu.`,
	Version:           version.Version,
	PersistentPreRunE: setup,
	Run: func(c *cobra.Command, args []string) {
		play(nil)
	},
}

var (
	logFile    = "snake2p.log"
	logLevel   = "info"
	promEnable = false
	promListen = ":9000"
	recordDir  = ""

	gridWidth  = config.GridWidth
	gridHeight = config.GridHeight
	tickRate   = int(config.TickRate)
	port       = config.Port
)

// Execute runs the root command
func Execute() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logFile, "log-file", logFile, "file to write logs to, the terminal is taken by the game")
	flags.StringVar(&logLevel, "log-level", logLevel, "log level: debug, info, warn or error")
	flags.BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	flags.StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
	flags.StringVar(&recordDir, "record", recordDir, "directory to record every round to")
	flags.IntVar(&gridWidth, "width", gridWidth, "board width in cells")
	flags.IntVar(&gridHeight, "height", gridHeight, "board height in cells")
	flags.IntVar(&tickRate, "tick-rate", tickRate, "ticks per second")
	flags.IntVar(&port, "port", port, "port to host on, and to join on when the address has none")

	rootCmd.AddCommand(hostCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(localCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setup(c *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", logLevel)
	}
	log.SetLevel(level)

	if logFile != "" && logFile != "-" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			return errors.Wrapf(err, "open log file %s", logFile)
		}
		log.SetOutput(f)
		log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if gridWidth <= 0 || gridHeight <= 0 {
		return errors.Errorf("invalid board size %dx%d", gridWidth, gridHeight)
	}
	if tickRate <= 0 {
		return errors.Errorf("invalid tick rate %d", tickRate)
	}

	prometheus()
	return nil
}

func prometheus() {
	if !promEnable {
		log.Debug("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}

// fatal reports an error to the log and to the user and exits.
func fatal(err error, msg string) {
	log.WithError(err).Error(msg)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
