package constants

import "time"

// SessionState represents the current screen of the TUI
type SessionState int

const (
	AppName            = "eyerest"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/eyerest/eyerest.db"
	Version            = "v0.1.0"

	// Environment
	EnvDBConnection = "EYEREST_DB_CONNECTION"

	// Tray notifier
	NotifyMaxRetries     = 3
	NotifyRetryDelay     = 100 * time.Millisecond
	NotifyTimeout        = 2 * time.Second
	NotifierLockfileName = "eyerest-tray.lock"
	NotifierSecretHeader = "X-Eyerest-Secret"
	TrayAppIdentifier    = "com.julianstephens.eyerest"
	TrayExecutablePrefix = "eyerest-tray"

	// Overlay
	MinOverlayVisible = 100 * time.Millisecond
	CueMessage        = "Look away. Focus on something 20 feet away."

	// Host loops
	CountdownRefreshInterval = time.Second
	DefaultDaemonRefresh     = 30 * time.Second
)

const (
	StateDashboard SessionState = iota
	StateCue
	StateEditSettings
)
