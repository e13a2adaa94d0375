package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/zzsound/codes"
	"github.com/jsphweid/zzsound/notation"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encodes notation into sound codes",
	Long:  `Encodes notation into sound codes`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need a notation string...")
		}
		entries := notation.Parse(strings.Join(args, ""))
		fmt.Println(codes.FormatHex(entries))
	},
}
