package components

import "github.com/yohamta/donburi"

// CountdownData drives the 3-2-1-GO overlay before a round.
type CountdownData struct {
	Value  int // number shown; 0 shows the go text
	Timer  int // frames left for the current value
	Active bool
}

var Countdown = donburi.NewComponentType[CountdownData]()
