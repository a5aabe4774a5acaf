package components

import "github.com/yohamta/donburi"

// HealthData is the health of a mob. Max must be positive; Current is meant
// to stay within [0, Max] and SetCurrent enforces that.
type HealthData struct {
	Current float64
	Max     float64
}

// Ratio returns Current/Max. A zero Max is a construction bug and yields
// NaN or Inf rather than an error.
func (h *HealthData) Ratio() float64 {
	return h.Current / h.Max
}

// SetCurrent writes v clamped to [0, Max].
func (h *HealthData) SetCurrent(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > h.Max:
		v = h.Max
	}
	h.Current = v
}

// Damage removes amount and returns what is left.
func (h *HealthData) Damage(amount float64) float64 {
	h.SetCurrent(h.Current - amount)
	return h.Current
}

func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
