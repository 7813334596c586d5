package sim

import "github.com/dustin/go-humanize"

// buyAsset purchases quantity units at the current price, folding the cost
// into a volume-weighted average basis.
func (e *Engine) buyAsset(s *State, a Action) *State {
	if a.Quantity <= 0 {
		return s.reject("Order Rejected", "Quantity must be positive.")
	}
	asset := s.Asset(a.AssetID)
	if asset == nil {
		return s.reject("Order Rejected", "No asset with id '%s' exists.", a.AssetID)
	}
	cost := asset.Price * a.Quantity
	if s.Company.Assets < cost {
		return s.reject("Order Rejected", "Insufficient funds to buy %d x %s.", a.Quantity, asset.Name)
	}

	s.Company.Assets -= cost
	if h := s.Holding(a.AssetID); h != nil {
		totalQty := h.Quantity + a.Quantity
		totalCost := h.AveragePrice*float64(h.Quantity) + float64(cost)
		h.Quantity = totalQty
		h.AveragePrice = totalCost / float64(totalQty)
	} else {
		s.Portfolio.Holdings = append(s.Portfolio.Holdings, Holding{
			AssetID:      a.AssetID,
			Quantity:     a.Quantity,
			AveragePrice: float64(asset.Price),
		})
	}
	s.Portfolio.TotalValue = s.markToMarket()
	s.pushEvents(newEntry(s.Date, SentimentNeutral, "Asset Purchased",
		"Bought %d x %s for %s won.", a.Quantity, asset.Name, humanize.Comma(cost)))
	return s
}

func (e *Engine) sellAsset(s *State, a Action) *State {
	if a.Quantity <= 0 {
		return s.reject("Order Rejected", "Quantity must be positive.")
	}
	asset := s.Asset(a.AssetID)
	if asset == nil {
		return s.reject("Order Rejected", "No asset with id '%s' exists.", a.AssetID)
	}
	h := s.Holding(a.AssetID)
	if h == nil || h.Quantity < a.Quantity {
		return s.reject("Order Rejected", "Not enough %s held to sell %d.", asset.Name, a.Quantity)
	}

	proceeds := asset.Price * a.Quantity
	s.Company.Assets += proceeds
	h.Quantity -= a.Quantity
	if h.Quantity == 0 {
		kept := s.Portfolio.Holdings[:0]
		for _, held := range s.Portfolio.Holdings {
			if held.AssetID != a.AssetID {
				kept = append(kept, held)
			}
		}
		s.Portfolio.Holdings = kept
	}
	s.Portfolio.TotalValue = s.markToMarket()
	s.pushEvents(newEntry(s.Date, SentimentNeutral, "Asset Sold",
		"Sold %d x %s for %s won.", a.Quantity, asset.Name, humanize.Comma(proceeds)))
	return s
}
