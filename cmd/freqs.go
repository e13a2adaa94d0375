package cmd

import (
	"fmt"

	"github.com/jsphweid/zzsound/freq"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(freqsCmd)
}

var freqsCmd = &cobra.Command{
	Use:   "freqs",
	Short: "Prints the note frequency table",
	Long:  `Prints the note frequency table`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range freq.Frequencies() {
			fmt.Println(f)
		}
	},
}
