package booking

import (
	"math"

	"glowbook/models"
)

// Pricing rates. The payable total folds the platform commission into the
// base price before ITBIS is applied, and add-ons are appended after tax.
// That ordering is a business rule, not an approximation; do not reorder.
const (
	PlatformCommissionRate = 0.08
	ITBISRate              = 0.18
)

// Quote is the full price/duration breakdown for a session's selections.
// Every monetary figure is rounded to the nearest whole unit independently.
type Quote struct {
	BasePrice            float64 `json:"basePrice"`
	AddonTotal           float64 `json:"addonTotal"`
	AddonDurationMinutes int     `json:"addonDurationMinutes"`
	TotalDurationMinutes int     `json:"totalDurationMinutes"`
	DisplayTotal         float64 `json:"displayTotal"` // pre-tax: base + add-ons
	Commission           float64 `json:"commission"`
	ITBIS                float64 `json:"itbis"`
	PayableTotal         float64 `json:"payableTotal"`
}

// BuildQuote derives the quote for a service plus the selected add-ons. It is
// a pure function: callers recompute it whenever the selection changes.
func BuildQuote(svc models.Service, addons []models.Addon) Quote {
	var addonTotal float64
	var addonDuration int
	for _, a := range addons {
		addonTotal += a.Price
		addonDuration += a.DurationMinutes
	}

	base := svc.Price
	return Quote{
		BasePrice:            base,
		AddonTotal:           addonTotal,
		AddonDurationMinutes: addonDuration,
		TotalDurationMinutes: svc.DurationMinutes + addonDuration,
		DisplayTotal:         base + addonTotal,
		Commission:           math.Round(base * PlatformCommissionRate),
		ITBIS:                math.Round(base * (1 + PlatformCommissionRate) * ITBISRate),
		PayableTotal:         math.Round(base*(1+PlatformCommissionRate)*(1+ITBISRate)) + addonTotal,
	}
}
