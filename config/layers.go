package config

import "github.com/yohamta/donburi/ecs"

// Draw layers, drawn in order.
const (
	Default ecs.LayerID = iota
	Overlay
)
