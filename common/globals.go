package common

const (
	// Every tokenized asset is split into 100 fungible units.
	TokenTotalSupply = int64(100)
	TokenDecimals    = 0

	// VAULT credited to the owner when an asset is tokenized.
	TokenizeRewardAmount = int64(100)
	RewardReasonTokenize = "asset_tokenization"

	NativeSymbol = "MON"
	NetworkName  = "Monad Testnet"

	AssetCategoryLand          = "land"
	AssetCategoryProperty      = "property"
	AssetCategoryArtifacts     = "artifacts"
	AssetCategoryPaintings     = "paintings"
	AssetCategoryLuxuryItem    = "luxury_item"
	AssetCategoryCollectibles  = "collectibles"
	AssetCategoryDigitalData   = "digital_data"
	AssetCategoryMiscellaneous = "miscellaneous"
)

var AssetCategories = map[string]bool{
	AssetCategoryLand:          true,
	AssetCategoryProperty:      true,
	AssetCategoryArtifacts:     true,
	AssetCategoryPaintings:     true,
	AssetCategoryLuxuryItem:    true,
	AssetCategoryCollectibles:  true,
	AssetCategoryDigitalData:   true,
	AssetCategoryMiscellaneous: true,
}
