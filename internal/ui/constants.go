package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconSuccess  = "✓"
	IconFailure  = "✗"
)

// Layout sizing
const (
	RowMinWidth  float32 = 420
	RowMinHeight float32 = 56

	URLEntryMinLines = 6

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 320
)
