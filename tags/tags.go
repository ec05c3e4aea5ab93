package tags

import "github.com/yohamta/donburi"

var (
	NetEntity = donburi.NewTag().SetName("NetEntity")
	Indicator = donburi.NewTag().SetName("Indicator")
)

// Resolv tags for the server arena
const (
	ResolvWall   = "wall"
	ResolvEntity = "entity"
)
