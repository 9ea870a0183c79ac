package assets

// Category tags an asset with its role.
type Category int

const (
	Recyclable Category = iota
	Noise
	UI
	Background
)

func (c Category) String() string {
	switch c {
	case Recyclable:
		return "recyclable"
	case Noise:
		return "noise"
	case UI:
		return "ui"
	case Background:
		return "background"
	}
	return "unknown"
}

// Asset is one manifest entry. Path is relative to the registry's file system.
type Asset struct {
	Name     string
	Path     string
	Category Category
}

// DefaultManifest lists the images shipped with the kiosk build.
var DefaultManifest = []Asset{
	// Recyclable items
	{Name: "argan-conditioner", Path: "images/items/ArganConditioner_800ML_Web.png", Category: Recyclable},
	{Name: "cypress-shampoo", Path: "images/items/CypressShampoo_800ML_Web.png", Category: Recyclable},
	{Name: "dry-volume-spray", Path: "images/items/DryVolumeSpray_Web.png", Category: Recyclable},
	{Name: "firm-hold-spray", Path: "images/items/FirmHoldVolumizingSpray_web-.png", Category: Recyclable},
	{Name: "hairspray", Path: "images/items/Hairspray_web.png", Category: Recyclable},
	{Name: "lavender-shampoo", Path: "images/items/LavenderShampoo_800ML_Web.png", Category: Recyclable},
	{Name: "lavender-violet-conditioner", Path: "images/items/LavenderVioletConditioner_800ML_Web.png", Category: Recyclable},
	{Name: "moisturizing-heat", Path: "images/items/MoisturizingHeat_Web.png", Category: Recyclable},
	{Name: "perilla-conditioner", Path: "images/items/PerillaConditioner_800ML_Web.png", Category: Recyclable},
	{Name: "purified-matte-texture", Path: "images/items/PurifiedMatteTexture_Web.png", Category: Recyclable},
	{Name: "rose-conditioner", Path: "images/items/RoseConditioner_800ML_Web.png", Category: Recyclable},
	{Name: "strong-paste", Path: "images/items/StrongPaste2_Web.png", Category: Recyclable},
	{Name: "texture-spray", Path: "images/items/TextureSpray_web.png", Category: Recyclable},
	{Name: "ylang-shampoo", Path: "images/items/YlangShampoo_800ML_Web.png", Category: Recyclable},

	// Noise items
	{Name: "trash-10", Path: "images/items/Ikoner_Webshop_PARK-10.png", Category: Noise},
	{Name: "trash-11", Path: "images/items/Ikoner_Webshop_PARK-11.png", Category: Noise},
	{Name: "trash-12", Path: "images/items/Ikoner_Webshop_PARK-12.png", Category: Noise},
	{Name: "trash-13", Path: "images/items/Ikoner_Webshop_PARK-13.png", Category: Noise},
	{Name: "trash-14", Path: "images/items/Ikoner_Webshop_PARK-14.png", Category: Noise},
	{Name: "trash-15", Path: "images/items/Ikoner_Webshop_PARK-15.png", Category: Noise},

	// UI
	{Name: "container", Path: "images/ui/container.png", Category: UI},
	{Name: "logo", Path: "images/ui/logo.png", Category: UI},

	// Backgrounds
	{Name: "background", Path: "images/ui/game_background.jpg", Category: Background},
	{Name: "sky", Path: "images/backgrounds/sky.jpg", Category: Background},
	{Name: "ground", Path: "images/backgrounds/ground.png", Category: Background},
}
