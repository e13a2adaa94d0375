package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jsphweid/zzsound/codes"
	"github.com/jsphweid/zzsound/notation"
	"github.com/jsphweid/zzsound/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Summarizes a directory of sound code files`,
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		report(dir)
	},
}

type soundsReport struct {
	numFiles    int64
	numEntries  int64
	numRests    int64
	numEffects  int64
	num32nds    int64
	numFailures int64
}

func analyzeSounds(dir string) soundsReport {
	var report soundsReport

	files, err := os.ReadDir(dir)
	if err != nil {
		panic("Could not read dir because: " + err.Error())
	}

	r, _ := regexp.Compile(`\.zzs$`)
	for _, file := range files {
		filename := file.Name()
		if !r.MatchString(filename) {
			continue
		}
		report.numFiles += 1

		data := util.ReadFileOrPanic(filepath.Join(dir, filename))
		entries, err := codes.ParseHex(data)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", filename, err)
			report.numFailures += 1
			continue
		}
		if _, err := notation.Decode(entries, notation.Options{}); err != nil {
			fmt.Printf("Skipping %v because: %v\n", filename, err)
			report.numFailures += 1
			continue
		}

		for _, entry := range entries {
			report.numEntries += 1
			report.num32nds += int64(entry.Multiplier)
			if entry.Code == 0 {
				report.numRests += 1
			}
			if entry.Code >= 240 {
				report.numEffects += 1
			}
		}
	}

	return report
}

func report(dir string) {
	res := analyzeSounds(dir)
	fmt.Printf("res.numFiles: %v\n", res.numFiles)
	fmt.Printf("res.numEntries: %v\n", res.numEntries)
	fmt.Printf("res.numRests: %v\n", res.numRests)
	fmt.Printf("res.numEffects: %v\n", res.numEffects)
	fmt.Printf("res.num32nds: %v\n", res.num32nds)
	fmt.Printf("res.numFailures: %v\n", res.numFailures)
}
