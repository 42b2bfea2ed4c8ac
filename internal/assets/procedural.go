// internal/assets/procedural.go
package assets

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"go-space-shooter/internal/defs"

	"golang.org/x/image/vector"
)

// poly — многоугольник в нормированных координатах [0,1] спрайта.
type poly struct {
	pts [][2]float32
	c   color.NRGBA
}

// rasterize fills the polygons in order onto a transparent w×h image.
func rasterize(w, h int, polys ...poly) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	z := vector.NewRasterizer(w, h)
	for _, p := range polys {
		if len(p.pts) < 3 {
			continue
		}
		z.Reset(w, h)
		z.DrawOp = draw.Over
		z.MoveTo(p.pts[0][0]*float32(w), p.pts[0][1]*float32(h))
		for _, pt := range p.pts[1:] {
			z.LineTo(pt[0]*float32(w), pt[1]*float32(h))
		}
		z.ClosePath()
		z.Draw(dst, dst.Bounds(), image.NewUniform(p.c), image.Point{})
	}
	return dst
}

// circle approximates a circle of radius r centered at (cx, cy).
func circle(cx, cy, r float32, c color.NRGBA) poly {
	const n = 20
	pts := make([][2]float32, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = [2]float32{cx + r*float32(math.Cos(a)), cy + r*float32(math.Sin(a))}
	}
	return poly{pts: pts, c: c}
}

func rect(x0, y0, x1, y1 float32, c color.NRGBA) poly {
	return poly{pts: [][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}, c: c}
}

// flipV mirrors a polygon top to bottom, turning an upward ship downward.
func flipV(p poly) poly {
	pts := make([][2]float32, len(p.pts))
	for i, pt := range p.pts {
		pts[i] = [2]float32{pt[0], 1 - pt[1]}
	}
	return poly{pts: pts, c: p.c}
}

// shiftX moves a polygon horizontally, used for the banking frames.
func shiftX(p poly, dx float32) poly {
	pts := make([][2]float32, len(p.pts))
	for i, pt := range p.pts {
		pts[i] = [2]float32{pt[0] + dx, pt[1]}
	}
	return poly{pts: pts, c: p.c}
}

func rgba(r, g, b, a uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: a} }

var (
	flameA = rgba(255, 170, 40, 255)
	flameB = rgba(255, 230, 120, 255)
)

func fighterHull(c color.NRGBA) poly {
	return poly{c: c, pts: [][2]float32{
		{0.5, 0}, {0.62, 0.35}, {1, 0.72}, {0.62, 0.7}, {0.6, 0.92},
		{0.4, 0.92}, {0.38, 0.7}, {0, 0.72}, {0.38, 0.35},
	}}
}

func cockpit(c color.NRGBA) poly {
	return poly{c: c, pts: [][2]float32{{0.5, 0.18}, {0.57, 0.4}, {0.5, 0.5}, {0.43, 0.4}}}
}

func flame(long bool) poly {
	tip := float32(0.97)
	c := flameA
	if long {
		tip = 1
		c = flameB
	}
	return poly{c: c, pts: [][2]float32{{0.42, 0.92}, {0.58, 0.92}, {0.5, tip}}}
}

// playerShipFrames builds the upward-facing player ship. Banking frames skew
// the cockpit to hint at a curve.
func playerShipFrames(w, h int, hull color.NRGBA, banking bool) []*Frame {
	var bank float32
	if banking {
		bank = 0.06
	}
	frames := make([]*Frame, 2)
	for i := range frames {
		frames[i] = NewFrame(rasterize(w, h,
			fighterHull(hull),
			shiftX(cockpit(rgba(120, 220, 255, 255)), bank),
			flame(i == 1),
		))
	}
	return frames
}

func enemyShipFrames(w, h, tier int) []*Frame {
	hulls := []color.NRGBA{rgba(200, 60, 60, 255), rgba(200, 120, 40, 255), rgba(150, 60, 200, 255)}
	hull := hulls[min(max(tier, 1), 3)-1]
	frames := make([]*Frame, 2)
	for i := range frames {
		parts := []poly{flipV(fighterHull(hull)), flipV(cockpit(rgba(255, 230, 120, 255))), flipV(flame(i == 1))}
		if tier >= 2 {
			// подвесные пушки
			parts = append(parts,
				rect(0.12, 0.5, 0.24, 0.95, hull),
				rect(0.76, 0.5, 0.88, 0.95, hull))
		}
		if tier == 3 {
			parts = append(parts, rect(0.44, 0.8, 0.56, 1, rgba(90, 90, 90, 255)))
		}
		frames[i] = NewFrame(rasterize(w, h, parts...))
	}
	return frames
}

func bossHull(c color.NRGBA) poly {
	return poly{c: c, pts: [][2]float32{
		{0, 0.2}, {0.15, 0}, {0.85, 0}, {1, 0.2}, {0.97, 0.7},
		{0.7, 0.88}, {0.55, 1}, {0.45, 1}, {0.3, 0.88}, {0.03, 0.7},
	}}
}

// bossFrames returns idle frames (looping lights) and the one-shot opening
// sequence that reveals the gun ports.
func bossFrames(w, h, archetype int) (idle, open []*Frame) {
	hulls := []color.NRGBA{rgba(90, 100, 120, 255), rgba(110, 80, 80, 255), rgba(70, 110, 80, 255)}
	hull := hulls[min(max(archetype, 1), 3)-1]
	plate := rgba(hull.R+40, hull.G+40, hull.B+40, 255)
	light := []color.NRGBA{rgba(255, 80, 80, 255), rgba(255, 200, 80, 255)}

	base := []poly{
		bossHull(hull),
		rect(0.2, 0.15, 0.8, 0.45, plate),
		circle(0.5, 0.3, 0.08, rgba(40, 40, 60, 255)),
	}
	for i := 0; i < 2; i++ {
		parts := append(append([]poly{}, base...),
			circle(0.5, 0.3, 0.04, light[i]))
		idle = append(idle, NewFrame(rasterize(w, h, parts...)))
	}

	const steps = 4
	for i := 1; i <= steps; i++ {
		depth := 0.05 * float32(i)
		parts := append(append([]poly{}, base...),
			rect(0.05, 0.7, 0.95, 0.7+depth, rgba(30, 30, 30, 255)),
			circle(0.5, 0.3, 0.04, light[0]))
		open = append(open, NewFrame(rasterize(w, h, parts...)))
	}
	return idle, open
}

func laserFrames(w, h int, c color.NRGBA) []*Frame {
	core := rgba(255, 255, 255, 255)
	return []*Frame{NewFrame(rasterize(w, h, rect(0, 0, 1, 1, c), rect(0.25, 0.1, 0.75, 0.9, core)))}
}

func rocketFrames(w, h int, up bool) []*Frame {
	frames := make([]*Frame, 2)
	for i := range frames {
		parts := []poly{
			rect(0.2, 0.25, 0.8, 0.8, rgba(200, 200, 210, 255)),
			{c: rgba(220, 60, 60, 255), pts: [][2]float32{{0.2, 0.25}, {0.5, 0}, {0.8, 0.25}}},
			flame(i == 1),
		}
		if !up {
			for j := range parts {
				parts[j] = flipV(parts[j])
			}
		}
		frames[i] = NewFrame(rasterize(w, h, parts...))
	}
	return frames
}

func sprayFrames(w, h int) []*Frame {
	return []*Frame{NewFrame(rasterize(w, h,
		poly{c: rgba(120, 255, 160, 255), pts: [][2]float32{{0.5, 0}, {1, 0.5}, {0.5, 1}, {0, 0.5}}},
	))}
}

var upgradeBackgroundColors = [defs.UpgradeBackgroundCount]color.NRGBA{
	rgba(60, 60, 160, 230), rgba(60, 140, 60, 230), rgba(160, 60, 60, 230),
	rgba(160, 140, 40, 230), rgba(120, 60, 160, 230), rgba(40, 140, 160, 230),
	rgba(100, 100, 100, 230),
}

func upgradeBackgroundFrames(w, h int) []*Frame {
	frames := make([]*Frame, len(upgradeBackgroundColors))
	for i, c := range upgradeBackgroundColors {
		frames[i] = NewFrame(rasterize(w, h, poly{c: c, pts: [][2]float32{
			{0.3, 0}, {0.7, 0}, {1, 0.3}, {1, 0.7}, {0.7, 1}, {0.3, 1}, {0, 0.7}, {0, 0.3},
		}}))
	}
	return frames
}

func arrow(up bool, c color.NRGBA) []poly {
	parts := []poly{
		{c: c, pts: [][2]float32{{0.5, 0.2}, {0.75, 0.5}, {0.25, 0.5}}},
		rect(0.42, 0.5, 0.58, 0.8, c),
	}
	if !up {
		for i := range parts {
			parts[i] = flipV(parts[i])
		}
	}
	return parts
}

func plus(size float32, c color.NRGBA) []poly {
	lo, hi := 0.5-size/2, 0.5+size/2
	return []poly{rect(0.44, lo, 0.56, hi, c), rect(lo, 0.44, hi, 0.56, c)}
}

// upgradeIconFrames draws one glyph per effect, indexed by defs.UpgradeEffect.
func upgradeIconFrames(w, h int) []*Frame {
	white := rgba(245, 245, 245, 255)
	red := rgba(255, 90, 90, 255)
	blue := rgba(120, 180, 255, 255)
	green := rgba(120, 255, 120, 255)

	glyphs := [defs.UpgradeEffectCount][]poly{
		defs.UpgradeDrone:        {{c: white, pts: [][2]float32{{0.5, 0.25}, {0.72, 0.72}, {0.28, 0.72}}}},
		defs.UpgradeLife:         {{c: red, pts: [][2]float32{{0.5, 0.3}, {0.75, 0.5}, {0.5, 0.78}, {0.25, 0.5}}}},
		defs.UpgradeDamageDown:   arrow(false, red),
		defs.UpgradeDamageUp:     arrow(true, red),
		defs.UpgradeFireRateDown: arrow(false, blue),
		defs.UpgradeFireRateUp:   arrow(true, blue),
		defs.UpgradeMaxHealth:    plus(0.6, green),
		defs.UpgradeHeal:         plus(0.35, green),
		defs.UpgradeParallel:     {rect(0.32, 0.25, 0.42, 0.75, white), rect(0.58, 0.25, 0.68, 0.75, white)},
		defs.UpgradeRocket: {
			rect(0.42, 0.35, 0.58, 0.75, white),
			{c: red, pts: [][2]float32{{0.42, 0.35}, {0.5, 0.2}, {0.58, 0.35}}},
		},
		defs.UpgradeSpray: {
			{c: white, pts: [][2]float32{{0.5, 0.75}, {0.2, 0.3}, {0.3, 0.25}}},
			{c: white, pts: [][2]float32{{0.5, 0.75}, {0.45, 0.2}, {0.55, 0.2}}},
			{c: white, pts: [][2]float32{{0.5, 0.75}, {0.7, 0.25}, {0.8, 0.3}}},
		},
	}
	frames := make([]*Frame, len(glyphs))
	for i, g := range glyphs {
		frames[i] = NewFrame(rasterize(w, h, g...))
	}
	return frames
}

// blastFrames draws an expanding, fading fireball.
func blastFrames(w, h, n int, inner, outer color.NRGBA) []*Frame {
	frames := make([]*Frame, n)
	for i := range frames {
		t := float32(i+1) / float32(n)
		alpha := uint8(255 * (1 - 0.7*t))
		o := outer
		o.A = alpha
		in := inner
		in.A = alpha
		frames[i] = NewFrame(rasterize(w, h,
			circle(0.5, 0.5, 0.15+0.33*t, o),
			circle(0.5, 0.5, 0.08+0.2*t, in),
		))
	}
	return frames
}

func sparkFrames(w, h, n int) []*Frame {
	frames := make([]*Frame, n)
	for i := range frames {
		s := 0.5 * (1 - float32(i)/float32(n))
		frames[i] = NewFrame(rasterize(w, h, poly{c: rgba(255, 255, 200, 255), pts: [][2]float32{
			{0.5, 0.5 - s}, {0.5 + s, 0.5}, {0.5, 0.5 + s}, {0.5 - s, 0.5},
		}}))
	}
	return frames
}

// proceduralFrames returns the built-in frames for an asset.
func proceduralFrames(id AssetID) []*Frame {
	w, h := id.Size()
	switch id {
	case ShipIdle:
		return playerShipFrames(w, h, rgba(80, 200, 120, 255), false)
	case ShipCurve:
		return playerShipFrames(w, h, rgba(80, 200, 120, 255), true)
	case DroneIdle:
		return playerShipFrames(w, h, rgba(160, 200, 220, 255), false)
	case DroneCurve:
		return playerShipFrames(w, h, rgba(160, 200, 220, 255), true)
	case EnemyShip1, EnemyShip2, EnemyShip3:
		return enemyShipFrames(w, h, int(id-EnemyShip1)+1)
	case Boss1Idle, Boss2Idle, Boss3Idle:
		idle, _ := bossFrames(w, h, int(id-Boss1Idle)/2+1)
		return idle
	case Boss1Open, Boss2Open, Boss3Open:
		_, open := bossFrames(w, h, int(id-Boss1Open)/2+1)
		return open
	case PlayerLaser:
		return laserFrames(w, h, rgba(80, 255, 120, 255))
	case EnemyLaser:
		return laserFrames(w, h, rgba(255, 70, 70, 255))
	case PlayerRocket:
		return rocketFrames(w, h, true)
	case EnemyRocket:
		return rocketFrames(w, h, false)
	case SprayBeam:
		return sprayFrames(w, h)
	case UpgradeBackground:
		return upgradeBackgroundFrames(w, h)
	case UpgradeIcon:
		return upgradeIconFrames(w, h)
	case Explosion:
		return blastFrames(w, h, 8, rgba(255, 240, 150, 255), rgba(255, 120, 30, 255))
	case HitSpark:
		return sparkFrames(w, h, 4)
	case BossBurst:
		return blastFrames(w, h, 6, rgba(255, 255, 255, 255), rgba(255, 80, 40, 255))
	}
	return nil
}
