// Package mock holds doubles whose names collide with the parent mock package.
package mock

// Database has the same rendered name as the parent package's Database
type Database interface {
	Ping() error
}

type ShadowDB struct {
	Name string
}

func (s *ShadowDB) Ping() error {
	return nil
}
