package archive

import (
	"database/sql"
	"sync"
	"time"
)

type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Event is a LUNAR session as seen from the archive.
type Event struct {
	EventID   string    `json:"eventId"`
	StartedAt time.Time `json:"startedAt"`
	HomeWins  int       `json:"homeWins"`
	AwayWins  int       `json:"awayWins"`
	Matches   int       `json:"matches"`
}

// setScores is the per-set detail stored in sets_json.
type setScores struct {
	Set1Home          int  `json:"set1Home"`
	Set1Away          int  `json:"set1Away"`
	Set1LoserTbPoints int  `json:"set1LoserTbPoints"`
	Set1LoserIsHome   bool `json:"set1LoserIsHome"`
	Set2Home          int  `json:"set2Home"`
	Set2Away          int  `json:"set2Away"`
	Set2LoserTbPoints int  `json:"set2LoserTbPoints"`
	Set2LoserIsHome   bool `json:"set2LoserIsHome"`
}
