package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hoppxi/maco/pkg/operation"
)

var volumeCmd = &cobra.Command{
	Use:   "volume [percentage]",
	Short: "Control system volume (0-100%)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetBool("input")

		if mute, _ := cmd.Flags().GetBool("mute"); mute {
			if err := operation.Audio.MuteOutput(); err != nil {
				return err
			}
			fmt.Println("Muted")
			return nil
		}
		if unmute, _ := cmd.Flags().GetBool("unmute"); unmute {
			if err := operation.Audio.UnmuteOutput(); err != nil {
				return err
			}
			fmt.Println("Unmuted")
			return nil
		}
		if toggle, _ := cmd.Flags().GetBool("toggle-mute"); toggle {
			return operation.Audio.ToggleMuteOutput()
		}

		if len(args) == 1 {
			pct, err := strconv.Atoi(args[0])
			if err != nil || pct < 0 || pct > 100 {
				return errors.New("volume must be between 0 and 100")
			}

			if input {
				err = operation.Audio.SetInputLevel(pct)
			} else {
				err = operation.Audio.SetOutputLevel(pct)
			}
			if err != nil {
				return err
			}

			fmt.Printf("Volume set to %d%%\n", pct)
			return nil
		}

		var (
			lvl int
			err error
		)
		if input {
			lvl, err = operation.Audio.GetInputLevel()
		} else {
			lvl, err = operation.Audio.GetOutputLevel()
		}
		if err != nil {
			return err
		}

		fmt.Printf("%d%%\n", lvl)
		return nil
	},
}

func init() {
	volumeCmd.Flags().Bool("input", false, "Operate on the input (microphone) volume")
	volumeCmd.Flags().Bool("mute", false, "Mute audio output")
	volumeCmd.Flags().Bool("unmute", false, "Unmute audio output")
	volumeCmd.Flags().Bool("toggle-mute", false, "Toggle mute state of audio output")
}
