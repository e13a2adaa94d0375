package render

import (
	"testing"

	"github.com/jsphweid/zzsound/model"
	"github.com/stretchr/testify/assert"
)

const testRate = 32000

func TestRenderSampleCounts(t *testing.T) {
	// a whole note at 32000hz is 57600 samples, so a 32nd note is 1800
	entries := []model.SoundEntry{
		{Code: 0x30, Multiplier: 2},
		{Code: 0, Multiplier: 1},
	}
	samples := NewRenderer(testRate).Render(entries)

	assert := assert.New(t)
	assert.Equal(len(samples), 3600+1800)
}

func TestRenderRestIsSilence(t *testing.T) {
	entries := []model.SoundEntry{{Code: 0, Multiplier: 4}}
	samples := NewRenderer(testRate).Render(entries)

	assert := assert.New(t)
	for _, s := range samples {
		assert.Equal(s, 0.0)
	}
}

func TestRenderNoteProducesSignal(t *testing.T) {
	entries := []model.SoundEntry{{Code: 0x30, Multiplier: 2}}
	samples := NewRenderer(testRate).Render(entries)

	var peak float64
	for _, s := range samples {
		if s > peak {
			peak = s
		}
	}

	assert := assert.New(t)
	assert.Greater(peak, 0.2)
}

func TestRenderEffectTogglePattern(t *testing.T) {
	r := NewRenderer(testRate)
	toggles := r.effectToggles(0)

	assert := assert.New(t)
	// wave 0 is a single 3200hz cycle: 5 samples up, 5 down
	assert.Equal(len(toggles), 10)
	for i := 0; i < 5; i++ {
		assert.True(toggles[i])
	}
	for i := 5; i < 10; i++ {
		assert.False(toggles[i])
	}
}

func TestRenderSilentEffectWave(t *testing.T) {
	r := NewRenderer(testRate)

	assert := assert.New(t)
	// wave 3 is all zeros and renders as silence
	assert.Empty(r.effectToggles(3))
	assert.Empty(r.effectToggles(200))
}

func TestRenderIsDeterministic(t *testing.T) {
	entries := []model.SoundEntry{
		{Code: 0x20, Multiplier: 3},
		{Code: 0xF1, Multiplier: 1},
	}
	a := NewRenderer(testRate).Render(entries)
	b := NewRenderer(testRate).Render(entries)

	assert := assert.New(t)
	assert.Equal(a, b)
}
