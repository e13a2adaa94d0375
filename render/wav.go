package render

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jsphweid/zzsound/model"
)

// WriteWav renders a sound entry sequence and writes it as a 16-bit mono WAV
// file.
func WriteWav(path string, entries []model.SoundEntry, sampleRate int) error {
	samples := NewRenderer(sampleRate).Render(entries)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", path, err)
	}
	defer out.Close()

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(s * math.MaxInt16)
	}

	enc := wav.NewEncoder(out, sampleRate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("could not write samples: %w", err)
	}
	return enc.Close()
}
