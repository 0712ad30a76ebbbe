package types

type PlatformKind string

const (
	PlatformMacOS PlatformKind = "macos"
	PlatformLinux PlatformKind = "linux"
	PlatformOther PlatformKind = "other"
)

type GroupCondition string

const (
	ConditionAlways    GroupCondition = "always"
	ConditionMacOSOnly GroupCondition = "macos-only"
	ConditionLinuxOnly GroupCondition = "linux-only"
)

type EnvRuleKind string

const (
	EnvRuleLiteral  EnvRuleKind = "literal"
	EnvRuleTemplate EnvRuleKind = "template"
	EnvRulePathList EnvRuleKind = "pathlist"
)
