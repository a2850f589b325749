// Package event decodes game event pointers into save-file bit locations.
//
// The game tracks one-bit event flags in two tables inside the save image:
//
//   - the event table at 0x6e2, addressed by CalculateOffset
//   - the complex event table at 0xb09, addressed by CalculateComplexOffset
//     and used by the game for pointers at or above 0xdac0
//
// Offsets are plain arithmetic on the pointer. Pointers are int64 and the
// shift is arithmetic, so negative pointers decode the same way an
// arbitrary-precision implementation would.
package event
