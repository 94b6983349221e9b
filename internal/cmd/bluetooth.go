package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoppxi/maco/pkg/btinfo"
)

var bluetoothCmd = &cobra.Command{
	Use:   "bluetooth",
	Short: "List Bluetooth devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			info, err := btinfo.GetBluetoothInfoJSON()
			if err != nil {
				return err
			}
			fmt.Println(string(info))
			return nil
		}

		devices, err := btinfo.DeviceNames()
		if err != nil {
			return err
		}
		if len(devices) == 0 {
			fmt.Println("No Bluetooth devices found")
			return nil
		}

		fmt.Println("Bluetooth Devices:")
		for _, device := range devices {
			fmt.Printf("  - %s\n", device)
		}
		return nil
	},
}

func init() {
	bluetoothCmd.Flags().Bool("json", false, "Output full device info in json format")
}
