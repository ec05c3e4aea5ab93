package netcomponents

import "github.com/yohamta/donburi"

type NetVelocityData struct {
	SpeedX, SpeedY float64
}

var NetVelocity = donburi.NewComponentType[NetVelocityData]()

// NetAccelerationData is the input-driven acceleration of a server entity.
// It is never sent to clients.
type NetAccelerationData struct {
	X, Y float64
}

var NetAcceleration = donburi.NewComponentType[NetAccelerationData]()
