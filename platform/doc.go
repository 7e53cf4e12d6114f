// Package platform keeps the registry of host implementations.
//
// A bridge carries commands to exactly one platform. Platform packages
// register a factory from init, and the simulation picks one by name with
// [Get] or lets [Default] choose the highest priority platform that can run:
//
//	import _ "github.com/gogpu/hostbridge/compositor" // registers "headless"
//
//	p, err := platform.Default()
package platform
