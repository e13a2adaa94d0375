package model

// SoundEntry is a single step in a sound effect sequence. Code 0 is a rest,
// 1-239 encode a note as octave*16 + chromatic index, and 240-255 select a
// built-in sound effect wave. Multiplier is the length in 32nd notes.
type SoundEntry struct {
	Code       uint8
	Multiplier uint8
}
