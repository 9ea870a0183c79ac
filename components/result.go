package components

import (
	"github.com/automoto/recycle-catch/game"
	"github.com/automoto/recycle-catch/records"
	"github.com/yohamta/donburi"
)

// ResultData is what the result screen shows about the finished round.
type ResultData struct {
	Score       int
	Stats       game.Stats
	Rank        int // 1-based rank in today's board, 0 when unranked
	Leaderboard []records.Entry
	IdleFrames  int
}

var Result = donburi.NewComponentType[ResultData]()
