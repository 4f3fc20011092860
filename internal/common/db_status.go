package common

import "sync/atomic"

// DBStatus is the process wide view of store reachability. It is advisory:
// a request may still fail against the store right after a successful probe.
type DBStatus struct {
	connected atomic.Bool
}

func NewDBStatus() *DBStatus {
	return &DBStatus{}
}

func (s *DBStatus) SetConnected(connected bool) {
	s.connected.Store(connected)
}

func (s *DBStatus) IsConnected() bool {
	return s.connected.Load()
}
