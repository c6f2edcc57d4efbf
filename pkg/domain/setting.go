package domain

// setting keys stored in the settings table
const (
	SettingDelayConfig = "delay_config" // JSON-encoded DelayConfig set at runtime
)
