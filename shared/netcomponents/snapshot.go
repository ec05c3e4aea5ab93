package netcomponents

import "github.com/yohamta/donburi"

// DefaultEntityID is the id of snapshots that carry no "id" field.
const DefaultEntityID = ""

// Snapshot is one authoritative entity state as sent by the server.
// Timestamp is in milliseconds. Buffered snapshots are never modified.
type Snapshot struct {
	ID        string `json:"id,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Pos       Vec2   `json:"pos"`
	Vel       Vec2   `json:"vel"`
}

// NetEntityData links an ECS entity to the server-side entity id.
type NetEntityData struct {
	ID string
}

var NetEntity = donburi.NewComponentType[NetEntityData]()
