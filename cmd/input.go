package cmd

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/zzsound/library"
	"github.com/jsphweid/zzsound/util"
)

// readCodes resolves the raw hex code string from a file argument, a literal
// hex flag or a library name.
func readCodes(args []string, hexStr string, name string) string {
	if hexStr != "" {
		return hexStr
	}
	if name != "" {
		sounds := library.GetSoundStrings([]string{name})
		s, ok := sounds[name]
		if !ok {
			panic("No sound named " + name + " in the library")
		}
		return s
	}
	if len(args) != 1 {
		panic("Need a file argument, --hex or --name")
	}
	return util.ReadFileOrPanic(args[0])
}

// outputName derives an output filename from the input file, falling back to
// a fresh uuid when the codes did not come from a file.
func outputName(args []string, ext string) string {
	if len(args) == 1 {
		base := filepath.Base(args[0])
		return strings.TrimSuffix(base, filepath.Ext(base)) + ext
	}
	return uuid.New().String() + ext
}
