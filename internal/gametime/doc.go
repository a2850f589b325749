// Package gametime converts game clock ticks into wall-clock units.
//
// One tick is two seconds. Minutes, hours and days are derived by real
// division and are never truncated, so a tick count of 1 is reported as
// 0.03333333333333333 minutes.
package gametime
