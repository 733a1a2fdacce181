package appenv

// Namespace selects a settings table.
type Namespace int

const (
	NamespaceGlobal Namespace = iota
	NamespaceSystem
)

func (n Namespace) String() string {
	switch n {
	case NamespaceGlobal:
		return "global"
	case NamespaceSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Well-known setting names.
const (
	// SettingAutoTime is 1 when the device takes its time from the network.
	SettingAutoTime = "auto_time"
)

// Settings answers integer device settings.
type Settings interface {
	// Int returns the value of name in ns, or def when it is not set.
	Int(ns Namespace, name string, def int) int
}

// MapSettings is a Settings backed by two in-memory tables.
type MapSettings struct {
	Global map[string]int
	System map[string]int
}

func (s MapSettings) Int(ns Namespace, name string, def int) int {
	var table map[string]int
	switch ns {
	case NamespaceGlobal:
		table = s.Global
	case NamespaceSystem:
		table = s.System
	}
	if v, ok := table[name]; ok {
		return v
	}
	return def
}
