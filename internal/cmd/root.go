package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "maco",
	Version:       Version,
	Short:         "Control macOS system features and get weather info",
	Long:          "maco controls display brightness, system volume, Apple Music and Bluetooth, and looks up current weather",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(brightnessCmd)
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(musicCmd)
	rootCmd.AddCommand(bluetoothCmd)
	rootCmd.AddCommand(weatherCmd)
}
