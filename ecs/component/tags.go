package component

// PlayerTag marks the player entity.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
