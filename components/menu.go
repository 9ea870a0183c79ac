package components

import (
	"github.com/automoto/recycle-catch/records"
	"github.com/yohamta/donburi"
)

// MenuData stores the state of the main menu
type MenuData struct {
	Leaderboard  []records.Entry // today's top scores, local book
	StartPressed bool
	Frames       int // drives the attract animation behind the menu
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
