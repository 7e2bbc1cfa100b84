package config

// Layout constants.
const (
	// MinProgressWidth is the narrowest progress bar drawn.
	MinProgressWidth = 10

	// TargetProgressWidth is the preferred progress bar width.
	TargetProgressWidth = 40

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 50

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MinutesInputCharLimit bounds the settings modal numeric inputs.
	MinutesInputCharLimit = 3

	// MinutesInputWidth is the rendered width of a settings input.
	MinutesInputWidth = 6
)
