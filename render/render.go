package render

import (
	"github.com/jsphweid/zzsound/constants"
	"github.com/jsphweid/zzsound/freq"
	"github.com/jsphweid/zzsound/model"
)

// EffectWaves holds the speaker toggle frequencies for effect codes 240-249.
// Playback walks a list one half period up, one half period down per entry.
var EffectWaves = [][]uint16{
	{3200},
	{1100, 1200, 1300, 1400, 1500, 1600, 1700, 1800, 1900, 2000, 2100, 2200, 2300, 2400},
	{4800, 4800, 8000, 1600, 4800, 4800, 8000, 1600, 4800, 4800, 8000, 1600, 4800, 4800},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{500, 2556, 1929, 3776, 3386, 4517, 1385, 1103, 4895, 3396, 874, 1616, 5124, 606},
	{1600, 1514, 1600, 821, 1600, 1715, 1600, 911, 1600, 1968, 1600, 1490, 1600, 1722},
	{2200, 1760, 1760, 1320, 2640, 880, 2200, 1760, 1760, 1320, 2640, 880, 2200, 1760},
	{688, 676, 664, 652, 640, 628, 616, 604, 592, 580, 568, 556, 544, 532},
	{1207, 1224, 1163, 1127, 1159, 1236, 1269, 1314, 1127, 1224, 1320, 1332, 1257, 1327},
	{378, 331, 316, 230, 224, 384, 480, 320, 358, 412, 376, 621, 554, 426},
}

const (
	volume       = 0.25
	lowpassLevel = 3.0
)

type Renderer struct {
	sampleRate int
	codeFreqs  [256]uint16
	magnitude  float64
}

func NewRenderer(sampleRate int) *Renderer {
	return &Renderer{sampleRate: sampleRate, codeFreqs: freq.CodeFrequencies()}
}

// Render synthesizes square wave samples for a sound entry sequence. Each
// entry lasts Multiplier 32nd notes, where a whole note is 1.8 seconds.
// Notes toggle the wave at the code frequency, rests are silence and effect
// codes play their pre-rendered toggle pattern followed by silence. A one
// pole lowpass smooths the speaker clicks.
func (r *Renderer) Render(entries []model.SoundEntry) []float64 {
	wholeNote := int(float64(r.sampleRate) * constants.WholeNoteSeconds)
	note32nd := wholeNote / 32

	var out []float64
	for _, entry := range entries {
		var toggles []bool
		var frequency int
		if entry.Code >= 240 {
			toggles = r.effectToggles(entry.Code - 240)
		} else if entry.Code > 0 {
			frequency = int(r.codeFreqs[entry.Code])
		}

		total := note32nd * int(entry.Multiplier)
		for remaining := total; remaining > 0; remaining-- {
			var dest float64
			if len(toggles) > 0 {
				if toggles[0] {
					dest = volume
				} else {
					dest = -volume
				}
				toggles = toggles[1:]
			} else if frequency > 0 && frequency < r.sampleRate {
				period := r.sampleRate / frequency
				if remaining%period > period/2 {
					dest = volume
				} else {
					dest = -volume
				}
			}
			r.magnitude -= (r.magnitude - dest) / lowpassLevel
			out = append(out, r.magnitude)
		}
	}
	return out
}

func (r *Renderer) effectToggles(index uint8) []bool {
	if int(index) >= len(EffectWaves) {
		return nil
	}
	var res []bool
	for _, f := range EffectWaves[index] {
		if f == 0 {
			continue
		}
		half := r.sampleRate / int(f) / 2
		for i := 0; i < half; i++ {
			res = append(res, true)
		}
		for i := 0; i < half; i++ {
			res = append(res, false)
		}
	}
	return res
}
