package cmd

import (
	"fmt"
	"sort"

	"github.com/jsphweid/zzsound/library"
	"github.com/jsphweid/zzsound/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Looks up named effects",
	Long:  `Looks up named effects in the library`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need at least 1 name...")
		}
		sounds := library.GetSoundStrings(args)
		keys := util.GetKeys(sounds)
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("%v: %v\n", key, sounds[key])
		}
	},
}
