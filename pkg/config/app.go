package config

import "time"

var AppVersion = "DEVELOPMENT"

// BuildType is the build variant, set at link time. The VR variant is "vr".
var BuildType = "release"

const (
	AppName          = "dolphinxr"
	LogFile          = "bridge.log"
	CfgFile          = "config.toml"
	ConfigDirName    = "Config"
	HandoffDirName   = "Handoff"
	BuildTypeVR      = "vr"
	CompanionPackage = "org.dolphinemu.dolphinemu.vr"
	HandoffMaxAge    = 24 * time.Hour
)
