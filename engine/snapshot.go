package engine

// SnapshotThrottle fires once every n ticks
type SnapshotThrottle struct {
	every int
	count int
}

func NewSnapshotThrottle(every int) SnapshotThrottle {
	if every < 1 {
		every = 1
	}
	return SnapshotThrottle{every: every}
}

// Tick counts one frame and reports whether a snapshot is due
func (t *SnapshotThrottle) Tick() bool {
	t.count++
	if t.count >= t.every {
		t.count = 0
		return true
	}
	return false
}
