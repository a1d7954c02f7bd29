// Command tmximport converts a Tiled TMX map into the level JSON format the
// game loads. TMX layers named "background", "object" and "overlay" map onto
// the three level layers; any other layer is skipped. Tile indices are taken
// as-is, so the referenced tileset metadata must list its tiles in the same
// scan order Tiled uses.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/brackenfell/tidelands/tilemap"
	tiled "github.com/lafriks/go-tiled"
)

func main() {
	in := flag.String("in", "", "TMX map to convert")
	out := flag.String("out", "", "output level JSON (default: input name with .json)")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	m, err := tiled.LoadFile(*in)
	if err != nil {
		log.Fatalf("parse %s: %v", *in, err)
	}

	doc, err := convert(m)
	if err != nil {
		log.Fatalf("convert %s: %v", *in, err)
	}

	target := *out
	if target == "" {
		target = strings.TrimSuffix(*in, filepath.Ext(*in)) + ".json"
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("encode %s: %v", target, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", target, err)
	}
	log.Printf("wrote %s (%dx%d)", target, doc.Cols, doc.Rows)
}

func convert(m *tiled.Map) (*tilemap.LevelDocument, error) {
	doc := &tilemap.LevelDocument{
		Rows:       m.Height,
		Cols:       m.Width,
		Background: emptyGrid(m.Height, m.Width),
		Object:     emptyGrid(m.Height, m.Width),
		Overlay:    emptyGrid(m.Height, m.Width),
	}

	for _, layer := range m.Layers {
		var grid tilemap.Grid
		switch strings.ToLower(layer.Name) {
		case "background":
			grid = doc.Background
		case "object":
			grid = doc.Object
		case "overlay":
			grid = doc.Overlay
		default:
			log.Printf("skipping layer %q", layer.Name)
			continue
		}

		for i, t := range layer.Tiles {
			if t == nil || t.Nil || t.Tileset == nil {
				continue
			}
			row, col := i/m.Width, i%m.Width
			grid[row][col] = &tilemap.Pointer{
				Tileset: tilesetID(t.Tileset),
				Index:   int(t.ID),
			}
		}
	}

	return doc, nil
}

func emptyGrid(rows, cols int) tilemap.Grid {
	g := make(tilemap.Grid, rows)
	for r := range g {
		g[r] = make([]*tilemap.Pointer, cols)
	}
	return g
}

func tilesetID(ts *tiled.Tileset) string {
	if ts.Name != "" {
		return strings.ToLower(ts.Name)
	}
	base := strings.TrimSuffix(filepath.Base(ts.Source), filepath.Ext(ts.Source))
	return strings.ToLower(base)
}
