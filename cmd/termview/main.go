package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/internal/logx"
	"github.com/srlehn/termview/interrupt"
	"github.com/srlehn/termview/terminal"
)

var rootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]) + ` [flags] [file...]`,
	Short: `view images in the terminal`,
	Long: `view images in the terminal

Images are drawn with half blocks, two pixels per cell. Animated GIFs loop
when they are the only input, press ctrl-c to stop them.
Without files the image is read from standard input.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(viewFunc(cmd, args))
	},
}

func init() {
	rootCmd.Flags().BoolVar(&debugFlag, `debug`, false, `debug errors`)
	rootCmd.Flags().BoolVar(&silentFlag, `silent`, false, `silence errors`)
	rootCmd.Flags().StringVar(&logFileFlag, `log-file`, ``, `log file`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	debugFlag   bool
	silentFlag  bool
	logFileFlag string
)

type viewer func(logger *slog.Logger) error

func run(fn viewer) {
	var err error
	if fn == nil {
		err = errors.NilParam()
	}
	var exitCode int
	var logger *slog.Logger
	var logCloser io.Closer
	defer func() {
		// catch panics to ascertain the terminal is reset
		if r := recover(); r != nil {
			exitCode = 1
			_ = interrupt.Cleanup(os.Stdout)
			logx.Error(`panic`, logx.Prov(logger), `recovered`, r)
			if !silentFlag {
				if stackFramer, ok := r.(interface{ ErrorStack() string }); ok {
					fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
				} else {
					debug.PrintStack()
				}
			}
		}
		if logCloser != nil {
			_ = logCloser.Close()
		}
		os.Exit(exitCode)
	}()
	if err == nil {
		logger, logCloser, err = newLogger()
	}
	if err == nil {
		err = fn(logger)
	}
	if err != nil {
		err = logx.Err(err, logx.Prov(logger), slog.LevelDebug)
		exitCode = 1
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, err.Error())
			}
		}
	}
}

// newLogger logs to stderr in color, or as plain text to --log-file.
func newLogger() (*slog.Logger, io.Closer, error) {
	lvl := slog.LevelWarn
	switch {
	case debugFlag:
		lvl = slog.LevelDebug
	case verboseFlag:
		lvl = slog.LevelInfo
	}
	if len(logFileFlag) == 0 {
		h := logx.NewHandler(os.Stderr, lvl, !terminal.IsTerminal(os.Stderr))
		return slog.New(h), nil, nil
	}
	f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.New(err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{AddSource: true, Level: lvl})
	return slog.New(h), f, nil
}
