package play

import (
	"time"

	"github.com/abhisek/mathtik/internal/minigame"
)

// timerTickMsg is sent every second to refresh the session clock. Ticks
// from another screen instance are dropped.
type timerTickMsg struct {
	owner *PlayScreen
	at    time.Time
}

// solveStepMsg carries one auto-solve move and the run it belongs to.
type solveStepMsg struct {
	Run minigame.Run
}
