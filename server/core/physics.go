package core

import (
	"math"

	"github.com/automoto/shootr/components"
	"github.com/automoto/shootr/shared/netcomponents"
	"github.com/automoto/shootr/tags"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const (
	maxSpeed = 12.0
	// playerDamping slows players that are not accelerating on an axis.
	playerDamping = 0.85
)

// updatePhysics runs one fixed step for every entity: acceleration is added
// to velocity, speed is clamped, then the body moves and bounces off walls.
func (s *Server) updatePhysics() {
	components.Object.Each(s.world, func(entry *donburi.Entry) {
		acc := netcomponents.NetAcceleration.Get(entry)
		vel := netcomponents.NetVelocity.Get(entry)
		obj := components.Object.Get(entry).Object

		vel.SpeedX = stepAxis(vel.SpeedX, acc.X, Actor.Get(entry).Kind)
		vel.SpeedY = stepAxis(vel.SpeedY, acc.Y, Actor.Get(entry).Kind)

		moveAndBounce(obj, vel)

		pos := netcomponents.NetPosition.Get(entry)
		pos.X = obj.X + obj.W/2
		pos.Y = obj.Y + obj.H/2
	})
}

func stepAxis(v, a float64, kind ActorKind) float64 {
	if a == 0 && kind == ActorPlayer {
		v *= playerDamping
		if math.Abs(v) < 0.05 {
			v = 0
		}
	}
	v += a
	return math.Max(-maxSpeed, math.Min(maxSpeed, v))
}

// moveAndBounce moves obj by vel one axis at a time. On contact with a wall
// the body stops at the wall and the velocity on that axis is reversed.
func moveAndBounce(obj *resolv.Object, vel *netcomponents.NetVelocityData) {
	if dx := vel.SpeedX; dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvWall); check != nil {
			if c, ok := wallContact(check, dx, func(v vector.Vector) float64 { return v.X() }); ok {
				dx = c
				vel.SpeedX = -vel.SpeedX
			}
		}
		obj.X += dx
	}

	if dy := vel.SpeedY; dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvWall); check != nil {
			if c, ok := wallContact(check, dy, func(v vector.Vector) float64 { return v.Y() }); ok {
				dy = c
				vel.SpeedY = -vel.SpeedY
			}
		}
		obj.Y += dy
	}

	obj.Update()
}

// wallContact returns the distance to the nearest wall hit by a move of d
// along one axis. Walls behind the body or out of reach are ignored, since
// Check reports everything sharing a cell with the target area.
func wallContact(check *resolv.Collision, d float64, axis func(vector.Vector) float64) (float64, bool) {
	best, found := 0.0, false
	for _, wall := range check.ObjectsByTags(tags.ResolvWall) {
		c := axis(check.ContactWithObject(wall))
		if c != 0 && (c > 0) != (d > 0) {
			continue
		}
		if math.Abs(c) > math.Abs(d) {
			continue
		}
		if !found || math.Abs(c) < math.Abs(best) {
			best, found = c, true
		}
	}
	return best, found
}
