package timeutil

import "github.com/aleister1102/utilcode/internal/appenv"

// IsUsingNetworkProvidedTime reports whether the device takes its clock from
// the network. API levels from JELLY_BEAN_MR1 on, and unknown levels, read
// the global settings table; older levels read the system table. A nil
// environment reports false.
func IsUsingNetworkProvidedTime(env appenv.Environment) bool {
	if env == nil || env.Settings() == nil {
		return false
	}

	ns := appenv.NamespaceGlobal
	if level := env.SDKVersion(); level > 0 && level < appenv.APILevelJellyBeanMR1 {
		ns = appenv.NamespaceSystem
	}
	return env.Settings().Int(ns, appenv.SettingAutoTime, 0) == 1
}
