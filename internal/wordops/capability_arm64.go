//go:build arm64

package wordops

import "golang.org/x/sys/cpu"

func init() {
	hasPopcnt = cpu.ARM64.HasASIMD
	initCapabilities()
}
