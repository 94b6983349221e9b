/*
	maco controls macOS system features: display brightness, volume,
	Apple Music, Bluetooth device listing and weather lookup.
*/

package main

import (
	"github.com/hoppxi/maco/internal/cmd"
)

func main() {
	cmd.Execute()
}
