package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hoppxi/maco/internal/manager"
	"github.com/hoppxi/maco/pkg/brightness"
)

var brightnessCmd = &cobra.Command{
	Use:   "brightness [percentage]",
	Short: "Control screen brightness (10-100%)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var pct float64
		if len(args) == 1 {
			var err error
			pct, err = strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid percentage: %s", args[0])
			}
			if err := validateBrightnessPercent(pct); err != nil {
				return err
			}
		}

		paths := manager.Config.Load().GetStringSlice("display.frameworks")
		controller, err := brightness.NewController(paths)
		if err != nil {
			return err
		}
		defer controller.Close()

		if len(args) == 1 {
			if err := controller.Set(float32(pct / 100)); err != nil {
				return err
			}
			fmt.Printf("Brightness set to %.0f%%\n", pct)
			return nil
		}

		level, err := controller.Get()
		if err != nil {
			return err
		}
		fmt.Printf("%.0f%%\n", float64(level)*100)
		return nil
	},
}

// validateBrightnessPercent gates user input before the controller is even
// constructed. Zero is rejected outright rather than treated as "display
// off", and the negated range check also catches NaN.
func validateBrightnessPercent(pct float64) error {
	if pct == 0 {
		return errors.New("brightness cannot be 0")
	}
	if !(pct >= 10 && pct <= 100) {
		return errors.New("brightness must be between 10 and 100")
	}
	return nil
}
