package lootbox

// PlaceholderBoxImage is shown when preview art generation fails; opening
// a box never depends on the preview.
const PlaceholderBoxImage = "https://placehold.co/320x320.png?text=Mystery+Box"

// Error message constants
const (
	ErrMsgOpenBoxFailed = "failed to open loot box: %w"
)
