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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gmsh2fluent/InputParameters"
	"github.com/notargets/gmsh2fluent/fluent"
	"github.com/notargets/gmsh2fluent/mesh"
	"github.com/notargets/gmsh2fluent/mesh/readers"
	"github.com/notargets/gmsh2fluent/utils"
)

const exampleCaseFile = `
########################################
Title: "Channel"
Dimension: 2
Scale: 1.0
BoundaryTag: physical # or geometric
Volume:
  Name: fluid
  ID: 2
Surfaces:
  - {Name: interior, ID: 3, BC: interior, Tag: 0}
  - {Name: inlet, ID: 4, BC: velocity-inlet, Tag: 10}
  - {Name: outlet, ID: 5, BC: pressure-outlet, Tag: 20}
  - {Name: walls, ID: 6, BC: wall, Tag: 30}
########################################
`

type Convert struct {
	MeshFile string
	CaseFile string
	OutFile  string
	GmshFile string // optional Gmsh 1 dump of the ingested mesh
	Profile  string
	Scale    float64 // overrides the case file when non zero
	Gzip     bool
	Verbose  bool
}

// ConvertCmd represents the convert command
var ConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Gmsh mesh into a Fluent mesh",
	Long: `
Converts a Gmsh mesh into a Fluent face-based mesh. Boundary faces are assigned to
surfaces by the tag of the marker element covering them; the case file maps tags to
surfaces:
` + exampleCaseFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := &Convert{}
		c.MeshFile, _ = cmd.Flags().GetString("meshFile")
		c.CaseFile, _ = cmd.Flags().GetString("caseFile")
		c.OutFile, _ = cmd.Flags().GetString("output")
		c.GmshFile, _ = cmd.Flags().GetString("saveGmsh")
		c.Profile, _ = cmd.Flags().GetString("profile")
		c.Verbose, _ = cmd.Flags().GetBool("verbose")
		c.Scale = viper.GetFloat64("scale")
		c.Gzip = viper.GetBool("gzip")

		logger, err := newLogger(cmd.ErrOrStderr(), viper.GetString("log-level"))
		if err != nil {
			return err
		}
		prof, err := startProfile(c.Profile)
		if err != nil {
			return err
		}
		if prof != nil {
			defer prof.Stop()
		}
		_, err = RunConvert(c, cmd.OutOrStdout(), logger)
		if err != nil {
			logger.Error("conversion failed", "mesh", c.MeshFile, "err", err)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(ConvertCmd)
	ConvertCmd.Flags().StringP("meshFile", "F", "", "Gmsh mesh file (version 1 or 2.2 ASCII)")
	ConvertCmd.Flags().StringP("caseFile", "I", "", "YAML case file naming the volume and the surfaces")
	ConvertCmd.Flags().StringP("output", "o", "", "Fluent mesh to write, a .gz suffix compresses (default <meshFile>.fluent.msh)")
	ConvertCmd.Flags().String("saveGmsh", "", "also write the ingested mesh in Gmsh 1 format")
	ConvertCmd.Flags().String("profile", "", "write a cpu or mem profile")
	ConvertCmd.Flags().BoolP("verbose", "v", false, "print the case and mesh statistics")
	ConvertCmd.Flags().Float64("scale", 0, "coordinate scale factor, overrides the case file")
	ConvertCmd.Flags().Bool("gzip", false, "gzip the output")
	viper.BindPFlag("scale", ConvertCmd.Flags().Lookup("scale"))
	viper.BindPFlag("gzip", ConvertCmd.Flags().Lookup("gzip"))
}

// ReadCase loads and validates a case file
func ReadCase(filename string) (*InputParameters.CaseParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cp := &InputParameters.CaseParameters{}
	if err = cp.Parse(data); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cp, nil
}

func defaultOutput(meshFile string) string {
	return strings.TrimSuffix(meshFile, filepath.Ext(meshFile)) + ".fluent.msh"
}

// RunConvert executes the whole conversion. Nothing is written unless every stage
// succeeds.
func RunConvert(c *Convert, out io.Writer, logger *slog.Logger) (sum fluent.Summary, err error) {
	if len(c.MeshFile) == 0 {
		return sum, fmt.Errorf("must supply a mesh file (-F, --meshFile)")
	}
	if len(c.CaseFile) == 0 {
		return sum, fmt.Errorf("must supply a case file (-I, --caseFile), example:%s", exampleCaseFile)
	}
	cp, err := ReadCase(c.CaseFile)
	if err != nil {
		return sum, err
	}
	if c.Verbose {
		cp.Print(out)
	}
	surfaces, err := cp.SurfaceDescriptors()
	if err != nil {
		return sum, err
	}
	source, err := cp.TagSource()
	if err != nil {
		return sum, err
	}
	logger.Info("case loaded", "case", c.CaseFile, "title", cp.Title,
		"dimension", cp.Dimension, "surfaces", len(surfaces), "boundary_tag", source)

	msh, err := readers.ReadGmsh(c.MeshFile, cp.Dimension)
	if err != nil {
		return sum, err
	}
	logger.Info("mesh read", "mesh", c.MeshFile, "nodes", len(msh.Nodes()),
		"elements", len(msh.Elements()), "dropped", msh.Dropped(),
		"periodic_nodes", len(msh.PeriodicPairs()))
	if c.Verbose {
		msh.PrintStatistics(out)
	}
	if len(c.GmshFile) != 0 {
		if err = readers.WriteGmsh1File(c.GmshFile, msh); err != nil {
			return sum, err
		}
		logger.Info("gmsh copy written", "path", c.GmshFile)
	}

	topo, err := msh.Build(cp.VolumeDescriptor(), surfaces, source)
	if err != nil {
		return sum, err
	}
	logZones(logger, topo)
	logger.Debug("memory", "usage", utils.GetMemUsage())

	scale := cp.Scale
	if c.Scale != 0 {
		scale = c.Scale
	}
	outFile := c.OutFile
	if len(outFile) == 0 {
		outFile = defaultOutput(c.MeshFile)
	}
	sum, err = fluent.WriteFile(outFile, msh, topo, fluent.Options{
		Title: cp.Title,
		Scale: scale,
		Gzip:  c.Gzip,
	})
	if err != nil {
		return sum, err
	}
	logger.Info("fluent mesh written", "path", sum.Path, "cells", sum.Cells, "faces", sum.Faces,
		"zones", sum.Zones, "bytes", sum.Bytes, "compressed", sum.Compressed, "blake3", sum.Digest)
	return sum, nil
}

func logZones(logger *slog.Logger, topo *mesh.Topology) {
	cl := topo.Classification
	logger.Info("faces classified", "faces", cl.NumFaces,
		"interior", topo.Connectivity.NumInterior(), "zones", len(cl.Zones))
	for _, z := range cl.Zones {
		logger.Debug("zone", "name", z.Descriptor.Name, "id", z.Descriptor.ID,
			"bc", z.Descriptor.BC, "first", z.First, "last", z.Last, "faces", len(z.Faces))
	}
	for _, blk := range topo.Periodic {
		logger.Info("periodic pairs", "zone", blk.Periodic.Descriptor.Name, "pairs", len(blk.Pairs))
	}
}
