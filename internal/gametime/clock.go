package gametime

import (
	"fmt"

	"github.com/roach88/baktools/internal/savefile"
)

// WorldClockOffset is where the save image stores the world clock.
const WorldClockOffset = 0x6a

// WorldClock is the pair of tick counters kept in a save.
type WorldClock struct {
	Time      uint32 `struc:"uint32,little"`
	LastSlept uint32 `struc:"uint32,little"`
}

// ReadWorldClock reads the world clock from a save image.
func ReadWorldClock(img *savefile.Image) (WorldClock, error) {
	var clock WorldClock
	if err := img.ReadAt(WorldClockOffset, &clock); err != nil {
		return WorldClock{}, fmt.Errorf("world clock: %w", err)
	}
	return clock, nil
}

// Current converts the current game time.
func (c WorldClock) Current() Breakdown {
	b, _ := Convert(int64(c.Time)) // uint32 ticks never overflow
	return b
}

// Slept converts the game time at which the party last slept.
func (c WorldClock) Slept() Breakdown {
	b, _ := Convert(int64(c.LastSlept))
	return b
}
