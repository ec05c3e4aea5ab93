package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// BlobData is the sprite of a networked entity: a filled circle.
type BlobData struct {
	Color  color.RGBA
	Radius float32
}

var Blob = donburi.NewComponentType[BlobData]()
