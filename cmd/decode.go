package cmd

import (
	"fmt"

	"github.com/jsphweid/zzsound/codes"
	"github.com/jsphweid/zzsound/notation"
	"github.com/spf13/cobra"
)

var decodeHex string
var decodeName string
var decodeAppendRests bool

func init() {
	decodeCmd.Flags().StringVar(&decodeHex, "hex", "", "decode this hex byte string instead of a file")
	decodeCmd.Flags().StringVar(&decodeName, "name", "", "decode a named effect from the library")
	decodeCmd.Flags().BoolVar(&decodeAppendRests, "append-rests", false, "append rests instead of replicating the legacy reset")
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decodes sound codes into notation",
	Long:  `Decodes sound codes into notation`,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := codes.ParseHex(readCodes(args, decodeHex, decodeName))
		if err != nil {
			panic("Could not parse sound codes: " + err.Error())
		}
		out, err := notation.Decode(entries, notation.Options{AppendRests: decodeAppendRests})
		if err != nil {
			panic("Could not decode sound codes: " + err.Error())
		}
		fmt.Println(out)
	},
}
