//go:build unix && !linux

package entropy

func openPlatform(device string) (reader, error) {
	return openDeviceReader(device)
}
