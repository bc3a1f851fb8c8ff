package state

import "sync/atomic"

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

// Tracker holds the lifecycle state shared by the server and its health endpoint.
type Tracker struct {
	value atomic.Int32
}

func New() *Tracker {
	return &Tracker{}
}

func (t *Tracker) Set(s ServerState) {
	t.value.Store(int32(s))
}

func (t *Tracker) Get() ServerState {
	return ServerState(t.value.Load())
}

// Ready reports whether the server is accepting traffic.
func (t *Tracker) Ready() bool {
	return t.Get() == ServerStateReady
}
