package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/termview"
	"github.com/srlehn/termview/internal/errors"
	"github.com/srlehn/termview/interrupt"
	"github.com/srlehn/termview/resize/rall"
)

var (
	widthFlag          uint
	heightFlag         uint
	xFlag              int
	yFlag              int
	absoluteOffsetFlag bool
	transparentFlag    bool
	onceFlag           bool
	staticFlag         bool
	fpsFlag            float64
	nameFlag           bool
	recursiveFlag      bool
	mirrorFlag         bool
	verboseFlag        bool
	resizerFlag        string
)

// file name sorts after main.go, the debug flags are registered first
func init() {
	flags := rootCmd.Flags()
	// -h is the height, help keeps only the long form
	flags.Bool(`help`, false, `help for `+rootCmd.Name())
	flags.UintVarP(&widthFlag, `width`, `w`, 0, `resize the image to a width in columns`)
	flags.UintVarP(&heightFlag, `height`, `h`, 0, `resize the image to a height in rows`)
	flags.IntVarP(&xFlag, `x`, `x`, 0, `x offset`)
	flags.IntVarP(&yFlag, `y`, `y`, 0, `y offset`)
	flags.BoolVarP(&absoluteOffsetFlag, `absolute-offset`, `a`, false, `offsets are screen coordinates instead of relative to the cursor`)
	flags.BoolVarP(&transparentFlag, `transparent`, `t`, false, `display transparent pixels in the terminal's background color`)
	flags.BoolVarP(&onceFlag, `once`, `o`, false, `play animations only once`)
	flags.BoolVarP(&staticFlag, `static`, `s`, false, `show only the first frame of animations`)
	flags.Float64VarP(&fpsFlag, `frames-per-second`, `f`, 0, `play animations at this frame rate`)
	flags.BoolVarP(&nameFlag, `name`, `n`, false, `print the file name above each image`)
	flags.BoolVarP(&recursiveFlag, `recursive`, `r`, false, `descend into subdirectories`)
	flags.BoolVarP(&mirrorFlag, `mirror`, `m`, false, `mirror images horizontally`)
	flags.BoolVarP(&verboseFlag, `verbose`, `v`, false, `log the resize decisions`)
	flags.StringVar(&resizerFlag, `resizer`, rall.Default, `resizer, one of: `+strings.Join(rall.Names(), `, `))
}

func viewFunc(cmd *cobra.Command, args []string) viewer {
	return func(logger *slog.Logger) error {
		if cmd.Flags().Changed(`frames-per-second`) && fpsFlag <= 0 {
			return errors.Errorf(`invalid frame rate %v`, fpsFlag)
		}
		rsz, err := rall.ByName(resizerFlag)
		if err != nil {
			return err
		}
		cfg := termview.DefaultConfig()
		cfg.Width = widthFlag
		cfg.Height = heightFlag
		cfg.X = xFlag
		cfg.Y = yFlag
		cfg.AbsoluteOffset = absoluteOffsetFlag
		cfg.Transparent = transparentFlag
		cfg.Once = onceFlag
		cfg.Static = staticFlag
		cfg.FPS = fpsFlag
		cfg.Name = nameFlag
		cfg.Recursive = recursiveFlag
		cfg.Mirror = mirrorFlag
		cfg.Resizer = rsz
		cfg.Logger = logger

		out := cmd.OutOrStdout()
		handoff := interrupt.NewHandoff()
		defer handoff.Close()
		closeFunc, err := interrupt.Watch(handoff, out, interrupt.WithLogger(logger))
		if err != nil {
			return err
		}
		defer closeFunc()

		v, err := termview.NewViewer(
			termview.SetConfig(cfg),
			termview.SetOutput(out),
			termview.SetInput(cmd.InOrStdin()),
			termview.SetCanceller(handoff),
		)
		if err != nil {
			return err
		}
		if err := v.ShowAll(context.Background(), args); err != nil {
			return err
		}
		if v.Interrupted() {
			// the watcher restores the terminal and ends the process
			select {}
		}
		return nil
	}
}
