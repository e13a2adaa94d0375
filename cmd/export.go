package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/zzsound/codes"
	"github.com/jsphweid/zzsound/constants"
	"github.com/jsphweid/zzsound/midifile"
	"github.com/spf13/cobra"
)

var exportHex string
var exportName string
var exportOut string

func init() {
	exportCmd.Flags().StringVar(&exportHex, "hex", "", "export this hex byte string instead of a file")
	exportCmd.Flags().StringVar(&exportName, "name", "", "export a named effect from the library")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output midi path")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports sound codes as a midi file",
	Long:  `Exports sound codes as a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := codes.ParseHex(readCodes(args, exportHex, exportName))
		if err != nil {
			panic("Could not parse sound codes: " + err.Error())
		}

		out := exportOut
		if out == "" {
			out = filepath.Join(constants.GetOutDir(), outputName(args, ".mid"))
		}
		os.MkdirAll(filepath.Dir(out), 0777)

		if err := midifile.Create(entries).WriteFile(out); err != nil {
			panic("Could not write midi file: " + err.Error())
		}
		fmt.Printf("Wrote %v\n", out)
	},
}
