package docnum

// Number prefixes by document kind. Each operational document type carries
// its own two/three-letter prefix so numbers read unambiguously on printed
// slips (e.g. PI-291224-3 is the third paddy inward of 29 Dec 2024).
const (
	// Purchases
	PrefixRicePurchase  = "RP"
	PrefixFrkPurchase   = "FP"
	PrefixPaddyPurchase = "PPP"
	PrefixSackPurchase  = "SP"

	// Sales
	PrefixHuskSale  = "HS"
	PrefixOtherSale = "OS"
	PrefixSale      = "SS"

	// Inward receipts
	PrefixFrkInward     = "FI"
	PrefixOtherInward   = "OI"
	PrefixPaddyInward   = "PI"
	PrefixPrivateInward = "PVI"
	PrefixSackInward    = "SI"

	// Outward dispatches
	PrefixFrkOutward         = "FO"
	PrefixGovtRiceOutward    = "GRO"
	PrefixOtherOutward       = "OO"
	PrefixPrivateRiceOutward = "PRO"

	// Milling
	PrefixPaddyMilling = "PM"
	PrefixRiceMilling  = "RM"

	// Labor
	PrefixInwardLabor  = "IWL"
	PrefixOutwardLabor = "OWL"
	PrefixMillingLabor = "MIL"
	PrefixOtherLabor   = "OTL"
)
