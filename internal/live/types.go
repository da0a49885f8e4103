package live

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 8
)

// Broadcaster pushes a payload to every connected viewer.
type Broadcaster interface {
	Broadcast(payload []byte)
}

// Hub fans court snapshots out to websocket viewers.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	last     []byte
	closed   bool
	upgrader websocket.Upgrader
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}
