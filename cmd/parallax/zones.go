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

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/parallax"
)

func newZonesCmd(opts *options) *cobra.Command {
	var coverage bool
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Print the zone sequences and mask statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, f, err := opts.update()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			m := d.Model()
			printZones(w, "screen", m.ScreenZones())
			printZones(w, "barrier", m.BarrierZones())
			fmt.Fprintf(w, "screen columns: %d left, %d right, %d guard (error ratio %.4f)\n",
				f.Screen.Count(parallax.LeftView), f.Screen.Count(parallax.RightView),
				f.Guards, f.ErrorRatio())
			fmt.Fprintf(w, "barrier columns: %d opaque, %d transparent\n",
				f.Barrier.Count(parallax.Opaque), f.Barrier.Count(parallax.Transparent))

			if coverage {
				cfg := d.Config()
				r := parallax.NewScreenRasteriser(cfg.ScreenResolution.X,
					float64(cfg.ScreenResolution.X)/cfg.ModelWidth())
				z := m.ScreenZones()
				if len(z) > 0 {
					z = z[1:]
				}
				for i, c := range r.Coverage(z) {
					fmt.Fprintf(w, "%d\t%s\t%.4f\n", i, f.Screen[i], c)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&coverage, "coverage", false, "also print the right-view coverage of every screen column")
	return cmd
}

func printZones(w io.Writer, name string, z parallax.Zones) {
	fmt.Fprintf(w, "%s zones (%d):", name, len(z))
	for _, v := range z {
		fmt.Fprintf(w, " %.6g", v)
	}
	fmt.Fprintln(w)
}
