package hand

import "github.com/SvenDH/go-card-hand/tween"

// Spring is a stiffness/damping pair for the unit-mass follower.
type Spring struct {
	K float64
	D float64
}

// VisualSettings tunes how a Visual chases its card.
type VisualSettings struct {
	PositionSpeed    float64 // sway lerp rate
	RotationSpeed    float64 // tilt lerp rate
	RotationAmount   float64 // degrees of spring rotation per unit of lag
	AutoTiltAmount   float64
	ManualTiltAmount float64 // degrees per unit of pointer offset while hovering
	SwayAmount       float64
	SwayPhase        float64 // phase offset per slot index

	Rest Spring
	Drag Spring

	MaxSpringRotationAngle float64
	PullBack               float64

	ScaleOnHover  float64
	ScaleOnDrag   float64
	ScaleDuration float64
	ScaleEase     tween.TweenFunc

	ShakeAngle    float64
	ShakeDuration float64
	ShakeVibrato  int

	EffectInterval float64
}

// DefaultVisualSettings returns the stock tuning.
func DefaultVisualSettings() VisualSettings {
	return VisualSettings{
		PositionSpeed:          10,
		RotationSpeed:          20,
		RotationAmount:         20,
		AutoTiltAmount:         10,
		ManualTiltAmount:       0.2,
		SwayAmount:             1,
		SwayPhase:              0.5,
		Rest:                   Spring{K: 800, D: 40},
		Drag:                   Spring{K: 600, D: 25},
		MaxSpringRotationAngle: 60,
		PullBack:               10,
		ScaleOnHover:           1.05,
		ScaleOnDrag:            1.15,
		ScaleDuration:          0.5,
		ScaleEase:              tween.OutElastic,
		ShakeAngle:             5,
		ShakeDuration:          0.2,
		ShakeVibrato:           20,
		EffectInterval:         1,
	}
}
