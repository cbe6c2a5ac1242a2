package engine

// System is a per-frame update stage
// Lower priority runs first
type System interface {
	Priority() int
	Update(w *World)
}
