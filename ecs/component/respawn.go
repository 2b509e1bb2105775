package component

import "github.com/whiskerking/platformer/common"

// SpawnPoint is where the player resets to on respawn.
type SpawnPoint struct {
	Position common.Vec3
}

var SpawnPointComponent = NewComponent[SpawnPoint]()

// RespawnRequest marks an entity for a full state reset on the next
// RespawnSystem tick.
type RespawnRequest struct{}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
