package timer

import (
	"time"

	"github.com/rl1809/kata/internal/port"
)

type WallScheduler struct{}

func NewWallScheduler() *WallScheduler {
	return &WallScheduler{}
}

func (s *WallScheduler) AfterFunc(d time.Duration, f func()) port.Timer {
	return time.AfterFunc(d, f)
}
