package hand

import (
	"math"

	"github.com/SvenDH/go-card-hand/tween"
)

// Pose is what a renderer needs to draw a visual. Angles are in degrees.
type Pose struct {
	Position Vec2
	Rotation float64 // spring rotation around the view axis
	Scale    float64
	Sway     float64 // vertical offset of the tilt layer
	Tilt     Vec3    // tilt layer angles
	Shake    Vec3    // shake layer angles
	Parallax Vec2    // hologram offset, 0.5 at 20 degrees of tilt
	Stack    int
	Layers   Layers
}

// Visual is the on-screen shadow of a card. It follows the card's logical
// position with damped springs and never writes back to the card.
type Visual struct {
	card     *Card
	settings *VisualSettings
	rng      tween.Rand

	pos      Vec2
	vel      Vec2
	rotDelta float64
	rotVel   float64
	rotation float64

	sway  float64
	tilt  Vec3
	scale float64
	shake Vec3

	scaleTween *tween.Tween
	shakeTween *tween.Shake
	effect     repeatTimer

	stack     int
	destroyed bool
}

func newVisual(card *Card, settings *VisualSettings, rng tween.Rand) *Visual {
	return &Visual{
		card:     card,
		settings: settings,
		rng:      rng,
		pos:      card.Position(),
		scale:    1,
		effect:   repeatTimer{interval: settings.EffectInterval},
	}
}

func (v *Visual) Card() *Card        { return v.card }
func (v *Visual) Position() Vec2     { return v.pos }
func (v *Visual) Velocity() Vec2     { return v.vel }
func (v *Visual) Rotation() float64  { return v.rotation }
func (v *Visual) Scale() float64     { return v.scale }
func (v *Visual) StackIndex() int    { return v.stack }
func (v *Visual) EffectActive() bool { return v.effect.armed }
func (v *Visual) Destroyed() bool    { return v.destroyed }

// Pose returns the current transform of every layer of the visual.
func (v *Visual) Pose() Pose {
	tilt := v.tilt.Add(v.shake)
	return Pose{
		Position: v.pos,
		Rotation: v.rotation,
		Scale:    v.scale,
		Sway:     v.sway,
		Tilt:     v.tilt,
		Shake:    v.shake,
		Parallax: Vec2{parallax(tilt.X), parallax(tilt.Y)},
		Stack:    v.stack,
		Layers:   v.card.Skin.Layers(),
	}
}

func (v *Visual) update(dt, now float64, pointer Vec2, hasPointer bool) {
	if v.destroyed {
		return
	}
	spring := v.settings.Rest
	if v.card.dragging {
		spring = v.settings.Drag
	}
	v.followPosition(dt, spring)
	v.followRotation(dt, spring)
	v.offsetTilt(dt, now, pointer, hasPointer)
	v.updateEffect(now)
	v.advanceTweens(dt)
}

func (v *Visual) followPosition(dt float64, s Spring) {
	displacement := v.pos.Sub(v.card.Position())
	force := displacement.Scale(-s.K).Sub(v.vel.Scale(s.D))
	v.vel = v.vel.Add(force.Scale(dt))
	v.pos = v.pos.Add(v.vel.Scale(dt))
}

func (v *Visual) followRotation(dt float64, s Spring) {
	movement := v.pos.X - v.card.Position().X
	displacement := v.rotDelta - movement*v.settings.RotationAmount

	force := -s.K*displacement - s.D*v.rotVel
	v.rotVel += force * dt
	v.rotDelta += v.rotVel * dt

	limit := v.settings.MaxSpringRotationAngle
	if overshoot := math.Abs(v.rotDelta) - limit; overshoot > 0 {
		v.rotVel -= sign(v.rotDelta) * overshoot * v.settings.PullBack * dt
	}
	v.rotation = clamp(v.rotDelta, -limit, limit)
}

func (v *Visual) offsetTilt(dt, now float64, pointer Vec2, hasPointer bool) {
	index, count := 0, 1
	if v.card.group != nil {
		index = v.card.SlotIndex()
		count = v.card.group.Len()
	}
	t := now + float64(index)*v.settings.SwayPhase
	sin, cos := math.Sin(t), math.Cos(t)

	center := float64(count-1) / 2
	normalized := 0.0
	if center != 0 {
		normalized = (float64(index) - center) / center
	}

	sway := sin * v.settings.SwayAmount
	if v.card.dragging {
		sway = 0
	}
	v.sway = lerp(v.sway, sway, v.settings.PositionSpeed*dt)

	rx := sin * v.settings.AutoTiltAmount
	ry := cos * v.settings.AutoTiltAmount
	if v.card.hovering && !v.card.dragging && hasPointer {
		offset := v.pos.Sub(pointer)
		rx = offset.Y * v.settings.ManualTiltAmount
		ry = offset.X * v.settings.ManualTiltAmount
	}
	rz := sin + normalized*-2

	step := v.settings.RotationSpeed * dt
	v.tilt = Vec3{
		X: wrapAngle(lerpAngle(v.tilt.X, rx, step)),
		Y: wrapAngle(lerpAngle(v.tilt.Y, ry, step)),
		Z: wrapAngle(lerpAngle(v.tilt.Z, rz, step)),
	}
}

func (v *Visual) updateEffect(now float64) {
	if v.card.inEffect != v.effect.armed {
		if v.card.inEffect {
			v.effect.start(now)
		} else {
			v.effect.stop()
			v.killShake()
		}
	}
	if v.effect.due(now) {
		v.startShake()
	}
}

func (v *Visual) advanceTweens(dt float64) {
	if v.scaleTween != nil {
		var done bool
		v.scale, done = v.scaleTween.Update(dt)
		if done {
			v.scaleTween = nil
		}
	}
	if v.shakeTween != nil {
		offset, done := v.shakeTween.Update(dt)
		v.shake = Vec3{offset[0], offset[1], offset[2]}
		if done {
			v.shakeTween = nil
		}
	}
}

func (v *Visual) onPress() {
	v.scaleTo(v.settings.ScaleOnDrag)
	v.startShake()
}

func (v *Visual) onRelease() {
	if v.card.hovering {
		v.scaleTo(v.settings.ScaleOnHover)
		return
	}
	v.scaleTo(1)
}

func (v *Visual) onEnter() {
	if g := v.card.group; g != nil && g.dragging != nil {
		return
	}
	v.scaleTo(v.settings.ScaleOnHover)
	v.startShake()
}

func (v *Visual) onExit() {
	if g := v.card.group; g != nil && g.dragging == v.card {
		return
	}
	v.scaleTo(1)
}

// scaleTo replaces any running scale tween, jumping it to its end first.
func (v *Visual) scaleTo(end float64) {
	if v.destroyed {
		return
	}
	if v.scaleTween != nil {
		v.scale = v.scaleTween.Kill(true)
	}
	v.scaleTween = tween.New(v.scale, end, v.settings.ScaleDuration, v.settings.ScaleEase)
}

func (v *Visual) startShake() {
	if v.destroyed {
		return
	}
	v.killShake()
	v.shakeTween = tween.NewShake(v.settings.ShakeDuration, v.settings.ShakeAngle, v.settings.ShakeVibrato, v.rng)
}

func (v *Visual) killShake() {
	if v.shakeTween == nil {
		return
	}
	v.shakeTween.Kill(true)
	v.shakeTween = nil
	v.shake = Vec3{}
}

func (v *Visual) destroy() {
	if v.scaleTween != nil {
		v.scale = v.scaleTween.Kill(true)
		v.scaleTween = nil
	}
	v.killShake()
	v.effect.stop()
	v.destroyed = true
}

// parallax maps a layer angle to the hologram offset.
func parallax(angle float64) float64 {
	angle = clamp(wrapAngle(angle), -90, 90)
	return remap(angle, -20, 20, -0.5, 0.5)
}
