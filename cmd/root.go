package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zzsound",
	Short: "ZZT sound effect toolkit",
	Long:  `Tools for working with ZZT-style sound effect byte sequences.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
