/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/notargets/gmsh2fluent/mesh"
	"github.com/notargets/gmsh2fluent/mesh/readers"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info <meshFile>",
	Short: "Print mesh statistics and the boundary tags found on marker elements",
	Long: `
Reads a Gmsh mesh, builds its face connectivity and prints node, element and face
counts together with every boundary tag and the number of faces carrying it. The tags
listed are the ones a case file has to map onto surfaces.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dim, _ := cmd.Flags().GetInt("dim")
		tagName, _ := cmd.Flags().GetString("boundaryTag")
		source, err := mesh.ParseTagSource(tagName)
		if err != nil {
			return err
		}
		return RunInfo(cmd.OutOrStdout(), args[0], dim, source)
	},
}

func init() {
	rootCmd.AddCommand(InfoCmd)
	InfoCmd.Flags().IntP("dim", "d", 3, "mesh dimension, 2 or 3")
	InfoCmd.Flags().String("boundaryTag", "physical", "tag column carrying boundary tags: physical or geometric")
}

// RunInfo prints the statistics of one mesh file
func RunInfo(w io.Writer, meshFile string, dim int, source mesh.TagSource) error {
	msh, err := readers.ReadGmsh(meshFile, dim)
	if err != nil {
		return err
	}
	msh.PrintStatistics(w)

	conn, err := mesh.BuildConnectivity(msh, source)
	if err != nil {
		return err
	}
	total := len(conn.Records())
	interior := conn.NumInterior()
	fmt.Fprintf(w, "  Faces: %d (%d interior, %d boundary)\n", total, interior, total-interior)

	tags, counts := conn.BoundaryTagCounts()
	fmt.Fprintf(w, "  Boundary tags (%s):\n", source)
	for _, tag := range tags {
		fmt.Fprintf(w, "    %d: %d faces\n", tag, counts[tag])
	}
	return nil
}
