// internal/ui/world.go
package ui

import (
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"
	"go-space-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WorldRenderer рисует игровое поле: фон, звёзды, все сущности и полоски
// здоровья. Поле рисуется в отдельное изображение и выводится со смещением.
type WorldRenderer struct {
	field     *ebiten.Image
	stars     *render.Starfield
	images    map[*assets.Frame]*ebiten.Image
	healthbar render.HealthbarColors
}

func NewWorldRenderer(stars *render.Starfield) *WorldRenderer {
	return &WorldRenderer{
		field:     ebiten.NewImage(config.FieldWidth, config.FieldHeight),
		stars:     stars,
		images:    make(map[*assets.Frame]*ebiten.Image),
		healthbar: render.DefaultHealthbarColors,
	}
}

// Update scrolls the background.
func (r *WorldRenderer) Update(deltaTime float64) {
	r.stars.Update(deltaTime)
}

// image returns the GPU image of a frame, uploading it on first use.
func (r *WorldRenderer) image(f *assets.Frame) *ebiten.Image {
	if img, ok := r.images[f]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(f.Image)
	r.images[f] = img
	return img
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, w *entity.World) {
	r.field.Fill(config.FieldColor)
	for _, s := range r.stars.Stars {
		size := float32(s.Size)
		vector.DrawFilledRect(r.field, float32(s.X), float32(s.Y), size, size, config.StarColor, false)
	}

	for _, u := range w.Upgrades {
		r.drawFrame(u.Frame, u.Position, component.DamageFlash{})
	}
	for _, e := range w.Enemies {
		r.drawActor(&e.Actor)
	}
	for _, b := range w.Bosses {
		r.drawActor(&b.Actor)
	}
	for _, p := range w.EnemyProjectiles {
		r.drawProjectile(p)
	}
	for _, p := range w.PlayerProjectiles {
		r.drawProjectile(p)
	}
	for _, a := range w.PlayerActors() {
		r.drawActor(a)
	}
	for _, e := range w.Effects {
		r.drawFrame(e.Anim.Frame(), e.Position, component.DamageFlash{})
	}

	for _, e := range w.Enemies {
		r.drawHealthbar(&e.Actor, false)
	}
	for _, b := range w.Bosses {
		if b.State != component.BossDying {
			r.drawHealthbar(&b.Actor, false)
		}
	}
	for _, a := range w.PlayerActors() {
		r.drawHealthbar(a, true)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(config.FieldOffsetX, config.FieldOffsetY)
	screen.DrawImage(r.field, op)
	vector.StrokeRect(screen,
		config.FieldOffsetX-config.FieldBorder, config.FieldOffsetY-config.FieldBorder,
		config.FieldWidth+2*config.FieldBorder, config.FieldHeight+2*config.FieldBorder,
		config.FieldBorder, config.BorderColor, false)
}

func (r *WorldRenderer) drawActor(a *component.Actor) {
	if a.Removed || a.Frame == nil {
		return
	}
	r.drawFrame(a.Frame, a.Position, a.Flash)
}

func (r *WorldRenderer) drawFrame(f *assets.Frame, pos component.Vector, flash component.DamageFlash) {
	if f == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	if flash.Duration > 0 {
		cr, cg, cb := render.FlashScale(flash.Progress())
		op.ColorScale.Scale(float32(cr), float32(cg), float32(cb), 1)
	}
	r.field.DrawImage(r.image(f), op)
}

// drawProjectile rotates angled shots so the sprite's nose follows the heading.
func (r *WorldRenderer) drawProjectile(p *component.Projectile) {
	if p.Removed {
		return
	}
	f := p.Frame()
	if !p.Angled {
		r.drawFrame(f, p.Position, component.DamageFlash{})
		return
	}
	w, h := float64(f.W()), float64(f.H())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(utils.DegToRad(90 - p.Angle))
	op.GeoM.Translate(p.Position.X+w/2, p.Position.Y+h/2)
	r.field.DrawImage(r.image(f), op)
}

// drawHealthbar draws a bar 90 % of the actor width: above enemies, below
// the player's ship and drones.
func (r *WorldRenderer) drawHealthbar(a *component.Actor, below bool) {
	if a.Removed || a.MaxHealth <= 0 {
		return
	}
	bw := a.W() * 0.9
	x := a.Position.X + (a.W()-bw)/2
	y := a.Position.Y - config.HealthbarHeight - 4
	if below {
		y = a.Position.Y + a.H() + 4
	}
	fx, fy := float32(x), float32(y)
	fw, fh := float32(bw), float32(config.HealthbarHeight)
	vector.DrawFilledRect(r.field, fx, fy, fw, fh, r.healthbar.Frame, false)
	vector.DrawFilledRect(r.field, fx+1, fy+1, fw-2, fh-2, r.healthbar.Empty, false)
	fill := float32(render.HealthbarLength(a.Health, a.MaxHealth, bw-2))
	if fill > 0 {
		vector.DrawFilledRect(r.field, fx+1, fy+1, fill, fh-2, r.healthbar.Fill, false)
	}
}
