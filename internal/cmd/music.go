package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hoppxi/maco/internal/manager"
	"github.com/hoppxi/maco/pkg/operation"
)

var musicCmd = &cobra.Command{
	Use:   "music",
	Short: "Control Apple Music",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if app := manager.Config.Load().GetString("music.app"); app != "" {
			operation.MusicApp = app
		}
	},
}

var musicPlayCmd = &cobra.Command{
	Use:   "play",
	Short: "Play current track",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := operation.Music.Play(); err != nil {
			return err
		}
		fmt.Println("Playing")
		return nil
	},
}

var musicPauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause playback",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := operation.Music.Pause(); err != nil {
			return err
		}
		fmt.Println("Paused")
		return nil
	},
}

var musicNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Next track",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := operation.Music.Next(); err != nil {
			return err
		}
		fmt.Println("Next track")
		return nil
	},
}

var musicPreviousCmd = &cobra.Command{
	Use:   "previous",
	Short: "Previous track",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := operation.Music.Previous(); err != nil {
			return err
		}
		fmt.Println("Previous track")
		return nil
	},
}

var musicCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show current track",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := operation.Music.Current()
		if err != nil {
			return err
		}
		fmt.Println(info)
		return nil
	},
}

var musicShuffleCmd = &cobra.Command{
	Use:   "shuffle [on|off]",
	Short: "Enable or disable shuffle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "on":
			return operation.Music.SetShuffle(true)
		case "off":
			return operation.Music.SetShuffle(false)
		}
		return errors.New("shuffle takes on or off")
	},
}

var musicPlaylistsCmd = &cobra.Command{
	Use:   "playlists [name]",
	Short: "List or play playlists",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			playlists, err := operation.Music.Playlists()
			if err != nil {
				return err
			}
			if len(playlists) == 0 {
				fmt.Println("No playlists found")
				return nil
			}

			fmt.Println("Playlists:")
			for _, playlist := range playlists {
				fmt.Printf("  - %s\n", playlist)
			}
			return nil
		}

		var (
			selected string
			err      error
		)
		if len(args) == 1 {
			selected = args[0]
			err = operation.Music.PlayPlaylist(selected)
		} else {
			selected, err = operation.Music.PlayPlaylistInteractive()
		}
		if err != nil {
			return err
		}
		fmt.Printf("Playing playlist: %s\n", selected)

		// The player needs a moment before it reports the new track.
		time.Sleep(500 * time.Millisecond)
		if info, err := operation.Music.Current(); err == nil {
			fmt.Printf("Now playing: %s\n", info)
		}
		return nil
	},
}

func init() {
	musicPlaylistsCmd.Flags().BoolP("list", "l", false, "Just list playlists without playing")

	musicCmd.AddCommand(musicPlayCmd)
	musicCmd.AddCommand(musicPauseCmd)
	musicCmd.AddCommand(musicNextCmd)
	musicCmd.AddCommand(musicPreviousCmd)
	musicCmd.AddCommand(musicCurrentCmd)
	musicCmd.AddCommand(musicShuffleCmd)
	musicCmd.AddCommand(musicPlaylistsCmd)
}
