package constants

// Catalog constants
const (
	// CatalogPageSize storefront search page size, fixed by the product grid.
	CatalogPageSize = 8
)

// Sort tokens accepted by the catalog search
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortNameAZ     = "name-az"
	SortNameZA     = "name-za"
	SortRatingHigh = "rating-high"
	SortRatingLow  = "rating-low"
)

// Checkout constants
const (
	CountryCodeUAE  = "AE"
	CurrencyDefault = "USD"
	OrderCodePrefix = "ORD"
)

// Storefront locales
const (
	LocaleEn = "en"
	LocaleAr = "ar"
)

// SupportedLocales negotiation order; first entry is the fallback.
var SupportedLocales = []string{LocaleEn, LocaleAr}

// Queue constants
const (
	QueueDefault          = "default"
	TaskUserProvision     = "user:provision"
	TaskOrderConfirmation = "order:confirmation_email"
)

// Cache constants
const (
	RedisPrefixDefault = "at"
)
