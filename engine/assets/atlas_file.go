package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hubastard/grove-atlasui/engine/atlas"
	"github.com/hubastard/grove-atlasui/engine/core"
	xdraw "golang.org/x/image/draw"
	"gopkg.in/yaml.v3"
)

const (
	AtlasImage = "atlas.png"
	AtlasTable = "atlas.yaml"
)

type atlasFile struct {
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	TextHeight int         `yaml:"text_height"`
	Rects      []rectEntry `yaml:"rects"`
}

// rectEntry is x, y, w, h. It marshals on one line.
type rectEntry [4]int

func (r rectEntry) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range r {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)})
	}
	return n, nil
}

// LoadAtlas reads atlas.png and atlas.yaml from dir. The table must hold
// exactly atlas.Count rects, indexed by id.
func LoadAtlas(dir string) (*atlas.Atlas, error) {
	tablePath := filepath.Join(dir, AtlasTable)
	raw, err := os.ReadFile(tablePath)
	if err != nil {
		return nil, fmt.Errorf("load atlas table %q: %w", tablePath, err)
	}
	var f atlasFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse atlas table %q: %w", tablePath, err)
	}
	if len(f.Rects) != atlas.Count {
		return nil, fmt.Errorf("%w: %q has %d rects, want %d", atlas.ErrInvalidAtlas, tablePath, len(f.Rects), atlas.Count)
	}

	imagePath := filepath.Join(dir, AtlasImage)
	img, err := decodePNG(imagePath)
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() != f.Width || b.Dy() != f.Height {
		return nil, fmt.Errorf("%w: %q is %dx%d, table says %dx%d",
			atlas.ErrInvalidAtlas, imagePath, b.Dx(), b.Dy(), f.Width, f.Height)
	}

	var rects [atlas.Count]core.Rect
	for i, r := range f.Rects {
		rects[i] = core.Rect{X: r[0], Y: r[1], W: r[2], H: r[3]}
	}
	a, err := atlas.New(f.Width, f.Height, coverage(img), rects, f.TextHeight)
	if err != nil {
		return nil, fmt.Errorf("load atlas %q: %w", dir, err)
	}
	core.Logger().Debug("atlas loaded", "dir", dir, "w", f.Width, "h", f.Height)
	return a, nil
}

func decodePNG(path string) (image.Image, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer fh.Close()

	img, err := png.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", path, err)
	}
	return img, nil
}

// coverage converts img to tightly packed R8. Images with transparency use
// their alpha channel, opaque ones their luminance.
func coverage(img image.Image) []byte {
	b := img.Bounds()
	dst := image.Rect(0, 0, b.Dx(), b.Dy())
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		gray := image.NewGray(dst)
		xdraw.Draw(gray, dst, img, b.Min, xdraw.Src)
		return gray.Pix
	}
	alpha := image.NewAlpha(dst)
	xdraw.Draw(alpha, dst, img, b.Min, xdraw.Src)
	return alpha.Pix
}

// SaveAtlas writes a as a grayscale atlas.png plus atlas.yaml under dir.
func SaveAtlas(dir string, a *atlas.Atlas) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save atlas: %w", err)
	}

	img := &image.Gray{Pix: a.Pixels, Stride: a.Width, Rect: image.Rect(0, 0, a.Width, a.Height)}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode atlas png: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, AtlasImage), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save atlas: %w", err)
	}

	f := atlasFile{Width: a.Width, Height: a.Height, TextHeight: a.TextHeight, Rects: make([]rectEntry, atlas.Count)}
	for i, r := range a.Rects {
		f.Rects[i] = rectEntry{r.X, r.Y, r.W, r.H}
	}
	out, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("encode atlas table: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, AtlasTable), out, 0o644); err != nil {
		return fmt.Errorf("save atlas: %w", err)
	}
	return nil
}
