package notation

import (
	"strings"

	"github.com/jsphweid/zzsound/model"
)

// scaleIndices maps note letters a-g to their chromatic index.
var scaleIndices = [7]uint8{9, 11, 0, 2, 4, 5, 7}

// Parse converts a PLAY-style notation string into the sound entries the
// player accepts. Length letters set the multiplier for everything that
// follows, + and - move the octave (clamped to 1..6), # and ! modify the
// preceding note letter, digits select built-in effects and unrecognized
// characters are skipped.
func Parse(s string) []model.SoundEntry {
	var res []model.SoundEntry
	octave := uint8(3)
	mul := uint8(1)

	chars := []byte(strings.ToLower(s))
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		switch {
		case c == 't':
			mul = 1
		case c == 's':
			mul = 2
		case c == 'i':
			mul = 4
		case c == 'q':
			mul = 8
		case c == 'h':
			mul = 16
		case c == 'w':
			mul = 32
		case c == '3':
			mul /= 3
		case c == '.':
			mul += mul / 2
		case c == '+':
			if octave < 6 {
				octave++
			}
		case c == '-':
			if octave > 1 {
				octave--
			}
		case c == 'x':
			res = append(res, model.SoundEntry{Code: 0, Multiplier: mul})
		case c >= 'a' && c <= 'g':
			index := scaleIndices[c-'a']
			if i+1 < len(chars) {
				switch chars[i+1] {
				case '#':
					index++
					i++
				case '!':
					index--
					i++
				}
			}
			res = append(res, model.SoundEntry{Code: octave*16 + index, Multiplier: mul})
		case c >= '0' && c <= '9':
			res = append(res, model.SoundEntry{Code: 240 + (c - '0'), Multiplier: mul})
		}
	}
	return res
}
