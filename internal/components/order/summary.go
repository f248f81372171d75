package order

import "github.com/bitebranch/ordering/internal/shared/config"

// RatesFromConfig lifts the order arithmetic parameters out of process
// configuration once at startup.
func RatesFromConfig(cfg *config.Config) Rates {
	return Rates{
		ServiceChargeBps:      cfg.ServiceChargeBps,
		DeliveryFeeCents:      cfg.DeliveryFeeCents,
		FreeDeliveryOverCents: cfg.FreeDeliveryOverCents,
	}
}

// Summarize computes the order-total breakdown for a cart. All arithmetic
// is integer cents. The service charge is ServiceChargeBps of the subtotal
// rounded half-up; the delivery fee is waived for subtotals at or above
// FreeDeliveryOverCents (when that threshold is set). An empty cart
// summarizes to all zeros.
func Summarize(items []CartItem, rates Rates) Summary {
	var summary Summary
	for _, item := range items {
		summary.SubtotalCents += item.UnitPriceCents * int64(item.Quantity)
		summary.ItemCount += item.Quantity
	}

	if summary.ItemCount == 0 {
		return summary
	}

	summary.ServiceChargeCents = (summary.SubtotalCents*int64(rates.ServiceChargeBps) + 5000) / 10000

	summary.DeliveryFeeCents = rates.DeliveryFeeCents
	if rates.FreeDeliveryOverCents > 0 && summary.SubtotalCents >= rates.FreeDeliveryOverCents {
		summary.DeliveryFeeCents = 0
	}

	summary.TotalCents = summary.SubtotalCents + summary.ServiceChargeCents + summary.DeliveryFeeCents
	return summary
}
