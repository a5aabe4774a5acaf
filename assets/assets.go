package assets

import (
	"bytes"
	"embed"
	"fmt"
	"path"

	"github.com/automoto/mobspawn/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:images
	imageFS embed.FS
)

type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

// LoadImage decodes an embedded image, relative to the images directory.
func (l *ImageLoader) LoadImage(name string) (*ebiten.Image, error) {
	p := path.Join("images", name)
	if img, ok := l.cache[p]; ok {
		return img, nil
	}

	imgBytes, err := imageFS.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", p, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create image from bytes for %s: %w", p, err)
	}

	l.cache[p] = img
	return img, nil
}

var imageLoader = NewImageLoader()

// LoadSpriteSheet returns the mob sprite sheet and its grid layout.
func LoadSpriteSheet() (*ebiten.Image, AtlasLayout, error) {
	img, err := imageLoader.LoadImage(config.Atlas.SheetPath)
	if err != nil {
		return nil, AtlasLayout{}, err
	}
	return img, NewGridLayout(config.Atlas), nil
}
