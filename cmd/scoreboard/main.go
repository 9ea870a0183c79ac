package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/automoto/recycle-catch/config"
	"github.com/automoto/recycle-catch/records"
	"github.com/automoto/recycle-catch/scoreboard"
)

func main() {
	port := flag.Int("port", 8080, "HTTP listen port")
	ttl := flag.Duration("ttl", 10*time.Minute, "Open play session TTL before expiry")
	zone := flag.String("zone", records.DefaultZone, "Time zone leaderboard days are counted in")
	duration := flag.Duration("duration", config.Game.Duration, "Round duration handed to devices")
	flag.Parse()

	settings := scoreboard.SettingsFrom(config.Game)
	settings.DurationMS = duration.Milliseconds()

	st := scoreboard.NewStore(*ttl, records.Location(*zone))
	defer st.Stop()

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("[scoreboard] starting on %s (TTL=%s, zone=%s)", addr, *ttl, *zone)
	if err := http.ListenAndServe(addr, scoreboard.NewMux(st, settings)); err != nil {
		log.Fatalf("[scoreboard] fatal: %v", err)
	}
}
