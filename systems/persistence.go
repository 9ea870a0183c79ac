package systems

import (
	"log"
	"time"

	"github.com/automoto/recycle-catch/records"
)

const appName = "recycle-catch"

var globalBook *records.Book

// InitPersistence opens the local play history through gdata.
func InitPersistence(loc *time.Location) error {
	b, err := records.Open(appName, loc)
	// An unreadable history still yields a usable, empty book.
	globalBook = b
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	return err
}

// TodayLeaderboard returns today's local top n, empty when persistence is off.
func TodayLeaderboard(n int) []records.Entry {
	if globalBook == nil {
		return nil
	}
	return globalBook.Today(n)
}

// RecordPlay stores a finished play and returns its rank today, 0 when it
// could not be ranked.
func RecordPlay(p records.Play) int {
	if globalBook == nil {
		return 0
	}
	rank, err := globalBook.Record(p)
	if err != nil {
		log.Printf("Warning: Could not save play: %v", err)
	}
	return rank
}
