package notation

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/zzsound/model"
)

// OctaveNotes is the chromatic alphabet, cycling once per octave.
var OctaveNotes = []string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}

// MulChars maps a power-of-two exponent to its length letter, 32nd note
// through whole note.
const MulChars = "tsiqhw"

const (
	startOctave     = 3
	startMultiplier = 1
)

// UnsupportedDurationError means a duration code is not expressible as a
// power-of-two, dotted or triplet length.
type UnsupportedDurationError struct {
	Pair       int
	Multiplier uint8
}

func (e UnsupportedDurationError) Error() string {
	return fmt.Sprintf("pair %v: duration %v is not a power-of-two, dotted or triplet length", e.Pair, e.Multiplier)
}

// InvalidNoteError means a pitch code's note nibble falls outside the 12-note
// chromatic scale.
type InvalidNoteError struct {
	Pair int
	Code uint8
}

func (e InvalidNoteError) Error() string {
	return fmt.Sprintf("pair %v: pitch code %v has note index %v, outside the chromatic scale", e.Pair, e.Code, e.Code%16)
}

type Options struct {
	// AppendRests appends an x for rests. By default rests replicate the
	// original tool, which threw away everything decoded so far and left
	// only the x.
	AppendRests bool
}

type decoder struct {
	out         string
	octave      int
	mul         uint8
	appendRests bool
}

// Decode renders a sound entry sequence as a PLAY-style notation string.
func Decode(entries []model.SoundEntry, opts Options) (string, error) {
	d := decoder{octave: startOctave, mul: startMultiplier, appendRests: opts.AppendRests}
	for i, entry := range entries {
		if err := d.next(i, entry); err != nil {
			return "", err
		}
	}
	return d.out, nil
}

func (d *decoder) next(pair int, entry model.SoundEntry) error {
	if entry.Multiplier != d.mul {
		if err := d.writeDuration(pair, entry.Multiplier); err != nil {
			return err
		}
		d.mul = entry.Multiplier
	}

	switch {
	case entry.Code == 0:
		if d.appendRests {
			d.out += "x"
		} else {
			d.out = "x"
		}
	case entry.Code < 240:
		octave := int(entry.Code / 16)
		note := int(entry.Code % 16)
		if note >= len(OctaveNotes) {
			return InvalidNoteError{Pair: pair, Code: entry.Code}
		}
		for octave < d.octave {
			d.out += "-"
			d.octave--
		}
		for octave > d.octave {
			d.out += "+"
			d.octave++
		}
		d.out += OctaveNotes[note]
	default:
		d.out += strconv.Itoa(int(entry.Code) - 240)
	}
	return nil
}

// writeDuration emits the letter for a new duration multiplier. The search
// deliberately starts at exponent 1, matching the original tool, so a bare
// 32nd note multiplier is only valid as the starting state.
func (d *decoder) writeDuration(pair int, mul uint8) error {
	exp := 1
	for 1<<(exp+1) < int(mul) {
		exp++
	}
	if exp >= len(MulChars) {
		return UnsupportedDurationError{Pair: pair, Multiplier: mul}
	}

	switch {
	case 1<<exp == int(mul):
		d.out += string(MulChars[exp])
	case (1<<exp)*3/2 == int(mul):
		d.out += string(MulChars[exp]) + "."
	default:
		pow := 1
		for 1<<pow < int(mul)*3 {
			pow++
		}
		if 1<<pow != int(mul)*3 || pow >= len(MulChars) {
			return UnsupportedDurationError{Pair: pair, Multiplier: mul}
		}
		d.out += string(MulChars[pow]) + "3"
	}
	return nil
}
