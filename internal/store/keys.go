package store

// Storage keys. Values are JSON documents.
const (
	KeyLang           = "app_lang"
	KeySession        = "session_auth"
	KeyCompletedNodes = "genesis_completed_nodes"
	KeyHistory        = "genesis_history"
	KeyVersion        = "genesis_version"
	KeyRoadmap        = "genesis_roadmap_completed"
	KeyScanHistory    = "genesis_scan_history"
	KeyHardwareCal    = "genesis_hardware_cal"
)

// FormatVersion is written to KeyVersion when a database is first opened.
const FormatVersion = 1

// AllKeys returns every key the application writes.
func AllKeys() []string {
	return []string{
		KeyLang,
		KeySession,
		KeyCompletedNodes,
		KeyHistory,
		KeyVersion,
		KeyRoadmap,
		KeyScanHistory,
		KeyHardwareCal,
	}
}
