package serial

import (
	"fmt"
	"sort"

	bugst "go.bug.st/serial"
)

// Ports returns the serial devices present on this machine, sorted by name
func Ports() ([]string, error) {
	ports, err := bugst.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	sort.Strings(ports)
	return ports, nil
}
