package component

// BounceReport is the landing-feedback output the simulation exposes to
// audio/VFX consumers. It is written on landings and never read back by
// the simulation itself.
type BounceReport struct {
	Intensity float64 // normalized 0-1 against the reference impact speed
	At        float64 // sim time of the landing
	Count     uint64
}

var BounceReportComponent = NewComponent[BounceReport]()

// BouncedRecently reports whether a landing was recorded within window
// seconds before now.
func (r *BounceReport) BouncedRecently(now, window float64) bool {
	if r == nil || r.Count == 0 {
		return false
	}
	return now-r.At <= window
}
