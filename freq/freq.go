package freq

import (
	"math"

	"github.com/jsphweid/zzsound/constants"
)

const (
	NumOctaves     = 15
	NotesPerOctave = 12
)

// Frequencies returns the equal-tempered frequency table: 12 notes for every
// octave 1..15, ascending, starting from a 64hz c. Each octave doubles the
// starting frequency and each semitone multiplies by 2^(1/12).
func Frequencies() []float64 {
	semitone := math.Pow(2, 1.0/12)
	res := make([]float64, 0, NumOctaves*NotesPerOctave)
	for octave := 1; octave <= NumOctaves; octave++ {
		noteFreq := constants.BaseFrequency * math.Pow(2, float64(octave-1))
		for note := 0; note < NotesPerOctave; note++ {
			res = append(res, noteFreq)
			noteFreq *= semitone
		}
	}
	return res
}

// CodeFrequencies returns the frequency for every sound code. Notes live at
// octave*16 + note, so indexes with a note nibble of 12-15 stay zero, as does
// the rest code 0. Frequencies above uint16 range are clamped.
func CodeFrequencies() [256]uint16 {
	var res [256]uint16
	semitone := math.Pow(2, 1.0/12)
	for octave := 1; octave <= NumOctaves; octave++ {
		noteFreq := constants.BaseFrequency * math.Pow(2, float64(octave-1))
		for note := 0; note < NotesPerOctave; note++ {
			f := math.Floor(noteFreq)
			if f > math.MaxUint16 {
				f = math.MaxUint16
			}
			res[octave*16+note] = uint16(f)
			noteFreq *= semitone
		}
	}
	return res
}
