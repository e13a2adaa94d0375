package midifile

import (
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/zzsound/model"
)

// 960 ticks per quarter note
const ticksPer32nd = 120

// Create builds a single-track SMF from a sound entry sequence. The 64hz base
// c sits at MIDI octave 2, so a note code maps to key (octave+2)*12 + note.
// Rests stretch the gap before the next note. Effect codes and notes outside
// the MIDI key range have no pitch and are skipped, keeping their length as a
// gap.
func Create(entries []model.SoundEntry) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(960)

	var track smf.Track
	var gap uint32
	for _, entry := range entries {
		ticks := uint32(entry.Multiplier) * ticksPer32nd
		if entry.Code == 0 || entry.Code >= 240 {
			gap += ticks
			continue
		}
		octave := int(entry.Code / 16)
		note := int(entry.Code % 16)
		key := (octave+2)*12 + note
		if note >= 12 || key > 127 {
			gap += ticks
			continue
		}
		track.Add(gap, midi.NoteOn(0, uint8(key), 100))
		track.Add(ticks, midi.NoteOff(0, uint8(key)))
		gap = 0
	}
	track.Close(0)
	res.Tracks = append(res.Tracks, track)
	return &res
}
