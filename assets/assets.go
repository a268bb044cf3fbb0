package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/automoto/overworld/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const PlayerSheetPath = "images/character.png"

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Levels exposes the embedded level files.
func Levels() fs.FS {
	return levelFS
}

// AtlasLoader slices the player sprite sheet into atlas frames and caches
// both the sheet and every frame.
type AtlasLoader struct {
	fsys       fs.FS
	cache      map[string]*ebiten.Image
	frameCache map[config.AtlasID][]*ebiten.Image
}

func NewAtlasLoader(fsys fs.FS) *AtlasLoader {
	return &AtlasLoader{
		fsys:       fsys,
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[config.AtlasID][]*ebiten.Image),
	}
}

func (l *AtlasLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// Frames returns every frame of an atlas in row-major order, so the slice
// index is the sprite index used by the animation tables.
func (l *AtlasLoader) Frames(id config.AtlasID) ([]*ebiten.Image, error) {
	if frames, ok := l.frameCache[id]; ok {
		return frames, nil
	}

	def, ok := config.Atlases[id]
	if !ok {
		return nil, fmt.Errorf("no atlas definition for %d", id)
	}

	sheet, err := l.LoadImage(PlayerSheetPath)
	if err != nil {
		return nil, err
	}

	rects := AtlasRects(def)
	frames := make([]*ebiten.Image, len(rects))
	for i, r := range rects {
		if !r.In(sheet.Bounds()) {
			return nil, fmt.Errorf("atlas %d frame %d %v outside sheet %v", id, i, r, sheet.Bounds())
		}
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}

	l.frameCache[id] = frames
	return frames, nil
}

// AtlasRects computes the source rectangle of every frame in def.
func AtlasRects(def config.AtlasDef) []image.Rectangle {
	rects := make([]image.Rectangle, 0, def.Columns*def.Rows)
	for y := 0; y < def.Rows; y++ {
		for x := 0; x < def.Columns; x++ {
			minX := def.OffsetX + x*def.FrameWidth
			minY := def.OffsetY + y*def.FrameHeight
			rects = append(rects, image.Rect(minX, minY, minX+def.FrameWidth, minY+def.FrameHeight))
		}
	}
	return rects
}

var atlasLoader = NewAtlasLoader(imageFS)

// PreloadPlayerAtlases slices both player atlases up front.
func PreloadPlayerAtlases() error {
	for id := range config.Atlases {
		if _, err := atlasLoader.Frames(id); err != nil {
			return err
		}
	}
	return nil
}

// PlayerFrame returns one frame of the player sheet, or nil if the index
// is out of range.
func PlayerFrame(id config.AtlasID, index int) *ebiten.Image {
	frames, err := atlasLoader.Frames(id)
	if err != nil || index < 0 || index >= len(frames) {
		return nil
	}
	return frames[index]
}
