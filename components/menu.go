package components

import "github.com/yohamta/donburi"

// MenuData stores the start screen state
type MenuData struct {
	HighScore int
	Ticks     int // ticks since the screen opened, drives the prompt blink
}

// Menu is the component type for start screen state
var Menu = donburi.NewComponentType[MenuData]()
