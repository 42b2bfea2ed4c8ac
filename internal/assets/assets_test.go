package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go-space-shooter/internal/defs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_ProceduralCoversEverything(t *testing.T) {
	c, err := NewCatalog("", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, c.Validate(AllAssets()))

	for _, id := range AllAssets() {
		a := c.Animation(id)
		w, h := id.Size()
		assert.Equal(t, w, a.Frame().W(), id.String())
		assert.Equal(t, h, a.Frame().H(), id.String())
	}
}

func TestProceduralSprites_HaveOpaquePixels(t *testing.T) {
	c, err := NewCatalog("", zerolog.Nop())
	require.NoError(t, err)

	for _, id := range []AssetID{ShipIdle, EnemyShip1, Boss1Idle, PlayerLaser, Explosion} {
		assert.Greater(t, c.Animation(id).Frame().Mask.Count(), 0, id.String())
	}
}

func TestCatalog_ValidateMissing(t *testing.T) {
	c := &Catalog{anims: map[AssetID]*Animation{}}
	err := c.Validate([]AssetID{ShipIdle})
	assert.True(t, errors.Is(err, ErrUnknownAsset))
}

func TestCatalog_AnimationCopiesAreIndependent(t *testing.T) {
	c, err := NewCatalog("", zerolog.Nop())
	require.NoError(t, err)

	a := c.Animation(Explosion)
	b := c.Animation(Explosion)
	a.Update(0.5)

	assert.True(t, a.Done())
	assert.False(t, b.Done())
	assert.Same(t, a.FrameAt(0), b.FrameAt(0), "frames are shared")
}

func TestAnimation_OneShotAndLoop(t *testing.T) {
	frames := []*Frame{
		NewFrame(image.NewNRGBA(image.Rect(0, 0, 2, 2))),
		NewFrame(image.NewNRGBA(image.Rect(0, 0, 2, 2))),
		NewFrame(image.NewNRGBA(image.Rect(0, 0, 2, 2))),
	}

	once := NewAnimation(frames, 0.1, false)
	once.Update(0.15)
	assert.Same(t, frames[1], once.Frame())
	once.Update(0.5)
	assert.True(t, once.Done())
	assert.Same(t, frames[2], once.Frame())

	loop := NewAnimation(frames, 0.1, true)
	loop.Update(0.35)
	assert.False(t, loop.Done())
	assert.Same(t, frames[0], loop.Frame())
}

func TestCatalog_UpgradeComposite(t *testing.T) {
	c, err := NewCatalog("", zerolog.Nop())
	require.NoError(t, err)

	f := c.Upgrade(defs.UpgradeHeal, 3)
	assert.Same(t, f, c.Upgrade(defs.UpgradeHeal, 3))
	assert.Equal(t, 50, f.W())
	assert.Greater(t, f.Mask.Count(), 0)
}

func TestNewCatalog_PNGOverrideIsScaled(t *testing.T) {
	dir := t.TempDir()
	laserDir := filepath.Join(dir, "projectile", "player_laser")
	require.NoError(t, os.MkdirAll(laserDir, 0o755))

	img := image.NewNRGBA(image.Rect(0, 0, 8, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	f, err := os.Create(filepath.Join(laserDir, "0.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	c, err := NewCatalog(dir, zerolog.Nop())
	require.NoError(t, err)

	frame := c.Animation(PlayerLaser).Frame()
	assert.Equal(t, 4, frame.W())
	assert.Equal(t, 16, frame.H())
	assert.Equal(t, 4*16, frame.Mask.Count())
}

func TestFrame_FlippedMirrorsMask(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	f := NewFrame(img)

	fl := f.Flipped()
	assert.True(t, fl.Mask.At(2, 0))
	assert.False(t, fl.Mask.At(0, 0))
	assert.Same(t, f, fl.Flipped())
}

func TestAssetHelpers(t *testing.T) {
	assert.Equal(t, EnemyShip3, EnemyShipAsset(3))
	idle, open := BossAssets(2)
	assert.Equal(t, Boss2Idle, idle)
	assert.Equal(t, Boss2Open, open)
}
