package btinfo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

type BluetoothDevice struct {
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Connected bool   `json:"connected"`
	MinorType string `json:"minor_type,omitempty"`
	Battery   string `json:"battery,omitempty"`
}

type BluetoothInfo struct {
	Enabled          bool              `json:"enabled"`
	ConnectedDevices []BluetoothDevice `json:"connected_devices"`
	PairedDevices    []BluetoothDevice `json:"paired_devices"`
}

// system_profiler -json shape: one report per controller, device lists as
// arrays of single-key objects mapping the device name to its properties.
type spDeviceEntry map[string]spDeviceProps

type spDeviceProps struct {
	Address   string `json:"device_address"`
	MinorType string `json:"device_minorType"`
	Battery   string `json:"device_batteryLevelMain"`
}

type spReport struct {
	Controller struct {
		State string `json:"controller_state"`
	} `json:"controller_properties"`
	Connected    []spDeviceEntry `json:"device_connected"`
	NotConnected []spDeviceEntry `json:"device_not_connected"`
}

type spRoot struct {
	Reports []spReport `json:"SPBluetoothDataType"`
}

func runProfiler(args ...string) ([]byte, error) {
	cmd := exec.Command("system_profiler", append([]string{"SPBluetoothDataType"}, args...)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("system_profiler error: %s", msg)
		}
		return nil, fmt.Errorf("failed to execute system_profiler: %w", err)
	}

	return stdout.Bytes(), nil
}

// GetBluetoothInfo queries system_profiler for the structured device listing.
func GetBluetoothInfo() (*BluetoothInfo, error) {
	data, err := runProfiler("-json")
	if err != nil {
		return nil, err
	}
	return parseProfilerJSON(data)
}

func GetBluetoothInfoJSON() ([]byte, error) {
	info, err := GetBluetoothInfo()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(info, "", "  ")
}

func parseProfilerJSON(data []byte) (*BluetoothInfo, error) {
	var root spRoot
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse system_profiler output: %w", err)
	}

	info := &BluetoothInfo{
		ConnectedDevices: []BluetoothDevice{},
		PairedDevices:    []BluetoothDevice{},
	}

	for _, report := range root.Reports {
		if report.Controller.State == "attrib_on" {
			info.Enabled = true
		}

		for _, entry := range report.Connected {
			for name, props := range entry {
				info.ConnectedDevices = append(info.ConnectedDevices, BluetoothDevice{
					Name:      name,
					Address:   props.Address,
					Connected: true,
					MinorType: props.MinorType,
					Battery:   props.Battery,
				})
			}
		}

		for _, entry := range report.NotConnected {
			for name, props := range entry {
				info.PairedDevices = append(info.PairedDevices, BluetoothDevice{
					Name:      name,
					Address:   props.Address,
					MinorType: props.MinorType,
				})
			}
		}
	}

	return info, nil
}

// DeviceNames lists device names from the human-readable profiler output.
func DeviceNames() ([]string, error) {
	data, err := runProfiler()
	if err != nil {
		return nil, err
	}
	return parseDeviceNames(string(data)), nil
}

// parseDeviceNames picks device entries out of the indented text report.
// Device names appear as "Name:" lines; section headers and status lines are
// filtered out.
func parseDeviceNames(output string) []string {
	devices := []string{}

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasSuffix(trimmed, ":") || strings.HasPrefix(trimmed, "Bluetooth") || len(trimmed) <= 1 {
			continue
		}

		name := strings.TrimSuffix(trimmed, ":")
		if strings.Contains(name, "Devices") ||
			strings.Contains(name, "Services") ||
			strings.Contains(name, "Controller") ||
			name == "Connected" || name == "Not Connected" ||
			name == "Paired" || name == "Not Paired" {
			continue
		}

		devices = append(devices, name)
	}

	return devices
}
