// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command spheremap generates LED layout files for a sphere model described
// by a YAML config: it projects every LED onto the sphere, balances the rings
// across the controller ports, and writes the enabled output formats.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/2dChan/spheremap"
	"github.com/2dChan/spheremap/config"
	"github.com/2dChan/spheremap/format"
)

func main() {
	configPath := flag.String("config", "sphere.yaml", "Path to the YAML model description")
	outDir := flag.String("out", ".", "Directory to write the generated files into")
	formatsFlag := flag.String("formats", "", "Comma-separated format names to generate (overrides the config)")
	prefix := flag.String("prefix", "", "Output filename prefix (overrides the config)")
	list := flag.Bool("list", false, "List the available output formats and exit")
	flag.Parse()

	if *list {
		for _, name := range format.Available() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	layout, err := buildLayout(cfg)
	if err != nil {
		log.Fatalf("Failed to compute layout: %v", err)
	}
	log.Printf("Layout: %d LEDs in %d rings across %d ports",
		layout.NumLEDs(), layout.NumRings(), layout.NumPorts())
	for id := 1; id <= layout.NumPorts(); id++ {
		port, err := layout.Port(id)
		if err != nil {
			log.Fatalf("Failed to read port %d: %v", id, err)
		}
		log.Printf("  port %d: rings %d-%d, LEDs %d-%d (%d)",
			port.ID(), port.FirstRing(), port.LastRing(),
			port.Start(), port.End(), port.LEDCount())
	}

	names := cfg.EnabledFormats()
	if *formatsFlag != "" {
		names = splitNames(*formatsFlag)
	}
	if len(names) == 0 {
		log.Fatalf("No output formats enabled; use -formats or the output.formats config section")
	}

	base := cfg.Output.DefaultPrefix
	if *prefix != "" {
		base = *prefix
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	params := writerParams(cfg)
	for _, name := range names {
		writer, err := format.New(name, params)
		if err != nil {
			log.Fatalf("Unknown format %q (run with -list to see the options)", name)
		}
		path := filepath.Join(*outDir, base+writer.Ext())
		if err := writeFile(path, writer, layout); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		log.Printf("Wrote %s", path)
	}
}

func buildLayout(cfg *config.Config) (*spheremap.Layout, error) {
	rings, err := cfg.RingTable()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.LayoutOptions()
	if err != nil {
		return nil, err
	}
	return spheremap.NewLayout(rings, cfg.Controller.Ports, opts...)
}

func writerParams(cfg *config.Config) format.Params {
	return format.Params{
		ModelName:    cfg.Model.Name,
		ModelVersion: cfg.Model.Version,
		TotalSize:    cfg.Controller.TotalSize,
		Chromatik: format.ChromatikParams{
			ArtNetHost:          cfg.Chromatik.ArtNetHost,
			ArtNetStartUniverse: cfg.Chromatik.ArtNetStartUniverse,
			DMXStartChannel:     cfg.Chromatik.DMXStartChannel,
		},
		MadMapper: format.MadMapperParams{
			GridResolution:  cfg.MadMapper.GridResolution,
			DMXStartChannel: cfg.MadMapper.DMXStartChannel,
		},
		XLights3D: format.GridParams{
			Width:  cfg.XLights3D.GridWidth,
			Height: cfg.XLights3D.GridHeight,
			Depth:  cfg.XLights3D.GridDepth,
		},
	}
}

func writeFile(path string, writer format.Writer, layout *spheremap.Layout) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writer.Write(f, layout); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
