package model

// Color is an RGBA display color. It has no gameplay effect.
type Color struct {
	R uint8 `json:"r" msgpack:"r"`
	G uint8 `json:"g" msgpack:"g"`
	B uint8 `json:"b" msgpack:"b"`
	A uint8 `json:"a" msgpack:"a"`
}

// Named colors used by the game.
var (
	White     = Color{R: 255, G: 255, B: 255, A: 255}
	Black     = Color{R: 0, G: 0, B: 0, A: 255}
	DarkGreen = Color{R: 0, G: 117, B: 44, A: 255}
	Green     = Color{R: 0, G: 228, B: 48, A: 255}
	DarkBlue  = Color{R: 0, G: 82, B: 172, A: 255}
	Blue      = Color{R: 0, G: 121, B: 241, A: 255}
	Red       = Color{R: 230, G: 41, B: 55, A: 255}
	Orange    = Color{R: 255, G: 161, B: 0, A: 255}
	Yellow    = Color{R: 253, G: 249, B: 0, A: 255}
	Pink      = Color{R: 255, G: 109, B: 194, A: 255}
	Purple    = Color{R: 200, G: 122, B: 255, A: 255}
	Gold      = Color{R: 255, G: 203, B: 0, A: 255}
	SkyBlue   = Color{R: 102, G: 191, B: 255, A: 255}
	Lime      = Color{R: 0, G: 158, B: 47, A: 255}
)
