package notation

import (
	"testing"

	"github.com/jsphweid/zzsound/model"
	"github.com/stretchr/testify/assert"
)

func TestParsePlayerHurtNotation(t *testing.T) {
	entries := Parse("--c+c-d#+d#")

	assert := assert.New(t)
	assert.Equal(entries, []model.SoundEntry{
		{Code: 0x10, Multiplier: 1},
		{Code: 0x20, Multiplier: 1},
		{Code: 0x13, Multiplier: 1},
		{Code: 0x23, Multiplier: 1},
	})
}

func TestParseDecodeRoundTrip(t *testing.T) {
	in := "--c+c-d#+d#"
	out, err := Decode(Parse(in), Options{})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(out, in)
}

func TestParseDurationLetters(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Parse("tc"), []model.SoundEntry{{Code: 48, Multiplier: 1}})
	assert.Equal(Parse("sc"), []model.SoundEntry{{Code: 48, Multiplier: 2}})
	assert.Equal(Parse("ic"), []model.SoundEntry{{Code: 48, Multiplier: 4}})
	assert.Equal(Parse("qc"), []model.SoundEntry{{Code: 48, Multiplier: 8}})
	assert.Equal(Parse("hc"), []model.SoundEntry{{Code: 48, Multiplier: 16}})
	assert.Equal(Parse("wc"), []model.SoundEntry{{Code: 48, Multiplier: 32}})
}

func TestParseDottedAndTripletModifiers(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Parse("s.c"), []model.SoundEntry{{Code: 48, Multiplier: 3}})
	assert.Equal(Parse("q3c"), []model.SoundEntry{{Code: 48, Multiplier: 2}})
}

func TestParseSharpsAndFlats(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Parse("c#"), []model.SoundEntry{{Code: 49, Multiplier: 1}})
	assert.Equal(Parse("d!"), []model.SoundEntry{{Code: 49, Multiplier: 1}})
}

func TestParseOctaveClamping(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Parse("-----c"), []model.SoundEntry{{Code: 16, Multiplier: 1}})
	assert.Equal(Parse("+++++c"), []model.SoundEntry{{Code: 96, Multiplier: 1}})
}

func TestParseRestsAndEffects(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Parse("x"), []model.SoundEntry{{Code: 0, Multiplier: 1}})
	assert.Equal(Parse("5"), []model.SoundEntry{{Code: 245, Multiplier: 1}})
}

func TestParseSkipsUnrecognizedCharacters(t *testing.T) {
	entries := Parse("c z d")

	assert := assert.New(t)
	assert.Equal(entries, []model.SoundEntry{
		{Code: 48, Multiplier: 1},
		{Code: 50, Multiplier: 1},
	})
}

func TestParseUppercaseInput(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Parse("SC#"), []model.SoundEntry{{Code: 49, Multiplier: 2}})
}
