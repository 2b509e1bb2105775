package component

// TTL is a frame-based time-to-live. Entities carrying it are destroyed
// after the given number of update ticks.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
