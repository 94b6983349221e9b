package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hoppxi/maco/internal/manager"
	"github.com/hoppxi/maco/pkg/weatherinfo"
)

var weatherCmd = &cobra.Command{
	Use:   "weather [location]",
	Short: "Get current weather",
	Long:  "Get current weather for a location (city, country). Without a location the service auto-detects it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := manager.Config.Load()

		location := strings.Join(args, " ")
		if location == "" {
			location = cfg.GetString("weather.location")
		}

		report, err := weatherinfo.GetWeather(cfg.GetString("weather.url"), location)
		if err != nil {
			return err
		}

		fmt.Println(report)
		return nil
	},
}
