package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"devshell/internal/types"
)

var validPlatforms = map[types.PlatformKind]struct{}{
	types.PlatformMacOS: {},
	types.PlatformLinux: {},
	types.PlatformOther: {},
}

// ParsePlatform maps a user-supplied platform indicator to a PlatformKind.
// "darwin" is accepted as an alias for macos so that runtime.GOOS values
// can be passed through unchanged.
func ParsePlatform(value string) (types.PlatformKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "macos", "darwin":
		return types.PlatformMacOS, nil
	case "linux":
		return types.PlatformLinux, nil
	case "other":
		return types.PlatformOther, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown platform: %s", value))
	}
}

// DetectPlatform classifies a GOOS string.  Anything that is not darwin
// or linux is "other": no conditional group applies there.
func DetectPlatform(goos string) types.PlatformKind {
	switch goos {
	case "darwin":
		return types.PlatformMacOS
	case "linux":
		return types.PlatformLinux
	default:
		return types.PlatformOther
	}
}

// PathListSeparator returns the separator used to join path lists for
// the given platform.  Every supported shell target is POSIX, so the
// mapping is currently constant; it lives here so it has one home.
func PathListSeparator(types.PlatformKind) string {
	return ":"
}

func conditionMatches(condition types.GroupCondition, platform types.PlatformKind) bool {
	switch condition {
	case types.ConditionAlways:
		return true
	case types.ConditionMacOSOnly:
		return platform == types.PlatformMacOS
	case types.ConditionLinuxOnly:
		return platform == types.PlatformLinux
	default:
		return false
	}
}
