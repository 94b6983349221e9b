package btinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "SPBluetoothDataType": [
    {
      "controller_properties": {
        "controller_address": "AA:BB:CC:DD:EE:FF",
        "controller_state": "attrib_on"
      },
      "device_connected": [
        {
          "AirPods Pro": {
            "device_address": "11:22:33:44:55:66",
            "device_minorType": "Headphones",
            "device_batteryLevelMain": "75%"
          }
        }
      ],
      "device_not_connected": [
        {
          "Magic Mouse": {
            "device_address": "66:55:44:33:22:11",
            "device_minorType": "Mouse"
          }
        },
        {
          "Magic Keyboard": {
            "device_address": "12:34:56:78:9A:BC"
          }
        }
      ]
    }
  ]
}`

func TestParseProfilerJSON(t *testing.T) {
	info, err := parseProfilerJSON([]byte(sampleJSON))
	require.NoError(t, err)

	assert.True(t, info.Enabled)

	require.Len(t, info.ConnectedDevices, 1)
	assert.Equal(t, BluetoothDevice{
		Name:      "AirPods Pro",
		Address:   "11:22:33:44:55:66",
		Connected: true,
		MinorType: "Headphones",
		Battery:   "75%",
	}, info.ConnectedDevices[0])

	require.Len(t, info.PairedDevices, 2)
	assert.Equal(t, "Magic Mouse", info.PairedDevices[0].Name)
	assert.False(t, info.PairedDevices[0].Connected)
	assert.Equal(t, "Magic Keyboard", info.PairedDevices[1].Name)
}

func TestParseProfilerJSONControllerOff(t *testing.T) {
	info, err := parseProfilerJSON([]byte(`{"SPBluetoothDataType":[{"controller_properties":{"controller_state":"attrib_off"}}]}`))
	require.NoError(t, err)

	assert.False(t, info.Enabled)
	assert.Empty(t, info.ConnectedDevices)
	assert.Empty(t, info.PairedDevices)
}

func TestParseProfilerJSONInvalid(t *testing.T) {
	_, err := parseProfilerJSON([]byte("not json"))
	require.Error(t, err)
}

const sampleText = `Bluetooth:

      Bluetooth Controller:
          Address: AA:BB:CC:DD:EE:FF
          State: On
      Connected:
          AirPods Pro:
              Address: 11:22:33:44:55:66
              Battery Level: 75%
      Not Connected:
          Magic Mouse:
              Address: 66:55:44:33:22:11
          Magic Keyboard:
              Address: 12:34:56:78:9A:BC
`

func TestParseDeviceNames(t *testing.T) {
	names := parseDeviceNames(sampleText)
	assert.Equal(t, []string{"AirPods Pro", "Magic Mouse", "Magic Keyboard"}, names)
}

func TestParseDeviceNamesEmpty(t *testing.T) {
	assert.Empty(t, parseDeviceNames(""))
}
