// Command atlasdump writes the built-in atlas as atlas.png + atlas.yaml, a
// starting point for custom atlases loaded through Config.AtlasDir.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hubastard/grove-atlasui/engine/assets"
	"github.com/hubastard/grove-atlasui/engine/atlas"
	"github.com/hubastard/grove-atlasui/engine/core"
)

func main() {
	out := flag.String("out", "atlas", "output directory")
	flag.Parse()

	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	a := atlas.Default()
	if err := assets.SaveAtlas(*out, a); err != nil {
		log.Fatal(err)
	}
	core.Logger().Info("atlas written", "dir", *out, "w", a.Width, "h", a.Height, "rects", atlas.Count)
}
