package component

// EffectComponent is an externally owned object toggled by game events
type EffectComponent struct {
	Active bool
}
