package linting

import (
	"fmt"
	"strings"
)

// Setting is the user override for a rule. Default defers to the rule's own
// default state.
type Setting uint8

const (
	SettingDefault Setting = iota
	SettingOn
	SettingOff
)

// SettingOf converts an explicit bool into a setting.
func SettingOf(enabled bool) Setting {
	if enabled {
		return SettingOn
	}
	return SettingOff
}

func (s Setting) String() string {
	switch s {
	case SettingOn:
		return "on"
	case SettingOff:
		return "off"
	}
	return "default"
}

// ParseSetting accepts on/off/default and the usual boolean spellings.
func ParseSetting(s string) (Setting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1", "enable", "enabled":
		return SettingOn, nil
	case "off", "false", "no", "0", "disable", "disabled":
		return SettingOff, nil
	case "default", "":
		return SettingDefault, nil
	}
	return SettingDefault, fmt.Errorf("invalid rule setting %q", s)
}
