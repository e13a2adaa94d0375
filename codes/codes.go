package codes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/zzsound/model"
)

// ParseHex reads whitespace separated hex byte tokens and pairs them up as
// (pitch code, duration code) sound entries.
func ParseHex(s string) ([]model.SoundEntry, error) {
	tokens := strings.Fields(s)
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("odd number of byte tokens (%v): every pitch code needs a duration code", len(tokens))
	}

	var res []model.SoundEntry
	for i := 0; i < len(tokens); i += 2 {
		code, err := parseByte(tokens[i])
		if err != nil {
			return nil, fmt.Errorf("bad pitch code at token %v: %w", i, err)
		}
		mul, err := parseByte(tokens[i+1])
		if err != nil {
			return nil, fmt.Errorf("bad duration code at token %v: %w", i+1, err)
		}
		res = append(res, model.SoundEntry{Code: code, Multiplier: mul})
	}
	return res, nil
}

// FormatHex renders sound entries back into the hex token form that ParseHex
// accepts.
func FormatHex(entries []model.SoundEntry) string {
	var parts []string
	for _, entry := range entries {
		parts = append(parts, fmt.Sprintf("%02X %02X", entry.Code, entry.Multiplier))
	}
	return strings.Join(parts, " ")
}

func parseByte(token string) (uint8, error) {
	v, err := strconv.ParseUint(token, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%q is not a hex byte", token)
	}
	return uint8(v), nil
}
