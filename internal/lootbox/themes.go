package lootbox

import "github.com/voidlabz/lootvault/internal/utils"

// NFTThemes is the pool a drop's subject is drawn from.
var NFTThemes = []string{
	"Cybernetic Dragon",
	"Cosmic Artifact",
	"Mystical Forest Spirit",
	"Steampunk Golem",
	"Ancient Relic",
	"Glitchy Cat",
	"Pixelated Hero",
	"Data Stream Orb",
	"Holographic Phoenix",
	"Quantum Entangled Skull",
}

// BoxThemes and BoxContentDescriptions feed the box preview art.
var BoxThemes = []string{
	"futuristic",
	"ancient",
	"elemental",
	"cyberpunk",
	"mythical",
}

var BoxContentDescriptions = []string{
	"rare digital artifacts",
	"powerful game items",
	"exclusive collectibles",
	"unique avatars",
	"legendary weapons",
}

// RandomTheme picks a drop theme uniformly
func RandomTheme() string {
	return NFTThemes[utils.RandomIndex(len(NFTThemes))]
}

// RandomBoxTheme picks a preview box theme uniformly
func RandomBoxTheme() string {
	return BoxThemes[utils.RandomIndex(len(BoxThemes))]
}

// RandomBoxContent picks a preview content description uniformly
func RandomBoxContent() string {
	return BoxContentDescriptions[utils.RandomIndex(len(BoxContentDescriptions))]
}
