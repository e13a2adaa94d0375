package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/zzsound/codes"
	"github.com/jsphweid/zzsound/constants"
	"github.com/jsphweid/zzsound/render"
	"github.com/spf13/cobra"
)

var renderHex string
var renderName string
var renderOut string
var renderSampleRate int

func init() {
	renderCmd.Flags().StringVar(&renderHex, "hex", "", "render this hex byte string instead of a file")
	renderCmd.Flags().StringVar(&renderName, "name", "", "render a named effect from the library")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output wav path")
	renderCmd.Flags().IntVar(&renderSampleRate, "rate", constants.DefaultSampleRate, "output sample rate")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders sound codes to a wav file",
	Long:  `Renders sound codes to a wav file`,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := codes.ParseHex(readCodes(args, renderHex, renderName))
		if err != nil {
			panic("Could not parse sound codes: " + err.Error())
		}

		out := renderOut
		if out == "" {
			out = filepath.Join(constants.GetOutDir(), outputName(args, ".wav"))
		}
		os.MkdirAll(filepath.Dir(out), 0777)

		if err := render.WriteWav(out, entries, renderSampleRate); err != nil {
			panic("Could not write wav file: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", out)
	},
}
