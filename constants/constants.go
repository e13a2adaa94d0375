package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetDBEndpoint() string {
	endpoint := os.Getenv("ZZSOUND_DB_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

// The frequency of the lowest c in the table.
const BaseFrequency = 64

// A whole note lasts this long when rendered, matching the original player.
const WholeNoteSeconds = 1.8

const DefaultSampleRate = 44100
