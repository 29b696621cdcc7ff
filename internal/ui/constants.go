package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconCopy     = "📋"
	IconClose    = "×"
	IconError    = "❌"
	IconLanguage = "🌐"
	IconVertical = "▤"
	IconRow      = "▥"
	IconReset    = "↺"
)

// Layout sizing (ElementRow / panels)
const (
	RowMinWidth  float32 = 320
	RowMinHeight float32 = 120

	ControlPanelWidth float32 = 340
	CodePanelHeight   float32 = 220

	WindowWidth  float32 = 1100
	WindowHeight float32 = 720
)

// Preview canvas sizing
const (
	PreviewPadding     float32 = 24
	PreviewRowGap      float32 = 4
	PreviewUnitGap     float32 = 16
	PreviewBlockHeight float32 = 20
	PreviewMinWidth    float32 = 240
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 320
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Notification panel
const (
	NotificationAutoHide = 3 * time.Second
)
