// internal/assets/catalog.go
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go-space-shooter/internal/defs"

	"github.com/rs/zerolog"
	xdraw "golang.org/x/image/draw"
)

var ErrUnknownAsset = errors.New("unknown asset")

// Catalog хранит все анимации игры. Анимации создаются один раз при загрузке,
// актёры получают независимые копии через Animation.
type Catalog struct {
	anims    map[AssetID]*Animation
	upgrades [defs.UpgradeEffectCount][defs.UpgradeBackgroundCount]*Frame
}

// NewCatalog builds every asset procedurally. When dir is not empty, PNG
// frames found under dir/<asset name>/ replace the built-in ones and are
// scaled to the nominal sprite size.
func NewCatalog(dir string, logger zerolog.Logger) (*Catalog, error) {
	c := &Catalog{anims: make(map[AssetID]*Animation, assetCount)}
	for _, id := range AllAssets() {
		frames := proceduralFrames(id)
		if dir != "" {
			loaded, err := loadFrames(filepath.Join(dir, filepath.FromSlash(id.String())), id)
			if err != nil {
				return nil, fmt.Errorf("failed to load asset %s: %w", id, err)
			}
			if len(loaded) > 0 {
				frames = loaded
				logger.Debug().Str("asset", id.String()).Int("frames", len(loaded)).Msg("asset override loaded")
			}
		}
		if len(frames) == 0 {
			continue
		}
		s := layouts[id]
		c.anims[id] = NewAnimation(frames, s.frameTime, s.loop)
	}
	logger.Info().Int("assets", len(c.anims)).Str("dir", dir).Msg("asset catalog ready")
	return c, nil
}

// loadFrames reads every PNG in dir in name order. A missing directory is not
// an error: the procedural frames stay in place.
func loadFrames(dir string, id AssetID) ([]*Frame, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	w, h := id.Size()
	frames := make([]*Frame, 0, len(names))
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		src, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
		frames = append(frames, NewFrame(dst))
	}
	return frames, nil
}

// Validate fails if any of the required assets is missing.
func (c *Catalog) Validate(required []AssetID) error {
	var errs []error
	for _, id := range required {
		a, ok := c.anims[id]
		if !ok || a.Len() == 0 {
			errs = append(errs, fmt.Errorf("%s: %w", id, ErrUnknownAsset))
		}
	}
	if n := c.anims[UpgradeIcon]; n != nil && n.Len() < defs.UpgradeEffectCount {
		errs = append(errs, fmt.Errorf("%s has %d frames, need %d", UpgradeIcon, n.Len(), defs.UpgradeEffectCount))
	}
	if n := c.anims[UpgradeBackground]; n != nil && n.Len() < defs.UpgradeBackgroundCount {
		errs = append(errs, fmt.Errorf("%s has %d frames, need %d", UpgradeBackground, n.Len(), defs.UpgradeBackgroundCount))
	}
	return errors.Join(errs...)
}

// Animation returns an independent playback of the asset. Ids are checked
// by Validate at startup, so a miss here is a programming error.
func (c *Catalog) Animation(id AssetID) *Animation {
	a, ok := c.anims[id]
	if !ok {
		panic(fmt.Sprintf("assets: %s not loaded", id))
	}
	return a.Copy()
}

// Upgrade returns the composed upgrade sprite: background variant with the
// effect icon on top. Results are cached.
func (c *Catalog) Upgrade(effect defs.UpgradeEffect, background int) *Frame {
	e := min(max(int(effect), 0), defs.UpgradeEffectCount-1)
	b := min(max(background, 0), defs.UpgradeBackgroundCount-1)
	if f := c.upgrades[e][b]; f != nil {
		return f
	}
	bg := c.anims[UpgradeBackground].FrameAt(b)
	icon := c.anims[UpgradeIcon].FrameAt(e)
	img := image.NewNRGBA(bg.Image.Bounds())
	draw.Draw(img, img.Bounds(), bg.Image, bg.Image.Bounds().Min, draw.Src)
	draw.Draw(img, img.Bounds(), icon.Image, icon.Image.Bounds().Min, draw.Over)
	f := NewFrame(img)
	c.upgrades[e][b] = f
	return f
}
