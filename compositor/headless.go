package compositor

import "github.com/gogpu/hostbridge/platform"

// HeadlessName is the registered name of the in-memory platform.
const HeadlessName = "headless"

func init() {
	platform.Register(HeadlessName, platform.PriorityFallback, func() (platform.Platform, error) {
		return New(), nil
	})
}
