// Package savefile provides read-only access to a Betrayal at Krondor
// save-game image.
//
// A save is a flat little-endian byte image. Game state lives at fixed
// offsets (the event bitfield at 0x6e2, the world clock at 0x6a, ...), so
// the package exposes nothing more than bounds-checked fixed-width reads
// at an absolute offset. Callers own the layout knowledge.
//
// Images are loaded fully into memory; saves are a few tens of kilobytes.
package savefile
