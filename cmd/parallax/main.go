// seehuhn.de/go/parallax - geometry and rasterisation for parallax barriers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command parallax computes and renders parallax barrier masks for a
// display described by a JSON configuration file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/parallax"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the flags shared by all sub-commands.
type options struct {
	configPath string
	logLevel   string
	left       []float64
	right      []float64
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "parallax",
		Short:        "Compute parallax barrier masks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogging(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "display configuration (JSON); built-in defaults if empty")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.Float64SliceVar(&opts.left, "left", []float64{-0.0325, 0.6}, "left eye position x,y in world coordinates")
	flags.Float64SliceVar(&opts.right, "right", []float64{0.0325, 0.6}, "right eye position x,y in world coordinates")

	root.AddCommand(
		newZonesCmd(opts),
		newRenderCmd(opts),
		newDiagramCmd(opts),
	)
	return root
}

func (o *options) setupLogging(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	parallax.SetLogger(slog.New(h))
	return nil
}

// config returns the display configuration selected by --config.
func (o *options) config() (parallax.DisplayConfig, error) {
	if o.configPath == "" {
		return parallax.DefaultDisplayConfig(), nil
	}
	f, err := os.Open(o.configPath)
	if err != nil {
		return parallax.DisplayConfig{}, err
	}
	defer f.Close()
	return parallax.LoadDisplayConfig(f)
}

// eyes returns the eye positions given by --left and --right.
func (o *options) eyes() (left, right vec.Vec2, err error) {
	left, err = point("left", o.left)
	if err != nil {
		return
	}
	right, err = point("right", o.right)
	return
}

func point(name string, v []float64) (vec.Vec2, error) {
	if len(v) != 2 {
		return vec.Vec2{}, fmt.Errorf("--%s needs two values x,y, got %d", name, len(v))
	}
	return vec.Vec2{X: v[0], Y: v[1]}, nil
}

// update builds a display and computes one frame.  A model failure is
// reported on the logger and the fallback frame is returned.
func (o *options) update() (*parallax.Display, *parallax.Frame, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, nil, err
	}
	d, err := parallax.NewDisplay(cfg)
	if err != nil {
		return nil, nil, err
	}
	left, right, err := o.eyes()
	if err != nil {
		return nil, nil, err
	}
	f, err := d.Update(left, right)
	if err != nil {
		parallax.Logger().Error("using flat fallback frame", "error", err)
	}
	return d, f, nil
}
