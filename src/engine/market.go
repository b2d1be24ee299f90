package engine

import (
	"identity-market/pkg/reasoncodes"
	"identity-market/src/model"
)

// List opens a fixed-price offer for an identity. Only the current
// owner may list, and only one active listing exists per identity.
func (e *Engine) List(id uint64, price uint64, caller model.Account) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ident, err := e.identityLocked(id)
	if err != nil {
		return err
	}
	if caller != ident.Owner {
		return newError(reasoncodes.ErrUnauthorized,
			"account %s does not own identity %d", caller, id)
	}
	if listing, ok := e.listings[id]; ok && listing.IsListed {
		return newError(reasoncodes.ErrAlreadyListed,
			"identity %d is already listed at price %d", id, listing.Price)
	}
	if price == 0 {
		return newError(reasoncodes.ErrInvalidInput, "listing price must be positive")
	}

	e.listings[id] = &model.Listing{
		IdentityId: id,
		Seller:     caller,
		Price:      price,
		IsListed:   true,
	}

	e.emitLocked(model.EventListed, id, model.ListedPayload{Seller: caller, Price: price})
	return nil
}

// Buy atomically transfers ownership, clears the listing and pays the
// seller. The price is re-checked against the live listing at execution
// time: the buyer's earlier read may be stale, and this re-check is what
// closes the double-sale race. State mutation completes before the
// outward payment is attempted; a failed payment rolls everything back.
func (e *Engine) Buy(id uint64, payment uint64, buyer model.Account) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ident, err := e.identityLocked(id)
	if err != nil {
		return err
	}

	listing, ok := e.listings[id]
	if !ok || !listing.IsListed {
		return newError(reasoncodes.ErrNotListed, "identity %d is not listed", id)
	}
	if buyer == listing.Seller {
		return newError(reasoncodes.ErrSelfTrade,
			"account %s cannot buy its own listing", buyer)
	}
	if payment != listing.Price {
		return newError(reasoncodes.ErrPriceMismatch,
			"payment %d does not match live listing price %d", payment, listing.Price)
	}
	if existing, owns := e.ownerIndex[buyer]; owns {
		return newError(reasoncodes.ErrAlreadyExists,
			"account %s already owns identity %d", buyer, existing)
	}

	seller := listing.Seller

	// Effects: ownership and listing state commit before any outward
	// transfer, so a reentrant payment path observes consistent state.
	delete(e.ownerIndex, seller)
	e.ownerIndex[buyer] = id
	ident.Owner = buyer
	delete(e.listings, id)
	e.recomputeLocked(ident)

	if e.payments != nil {
		if err := e.payments.Send(seller, payment); err != nil {
			// All-or-nothing: restore the pre-sale state.
			ident.Owner = seller
			delete(e.ownerIndex, buyer)
			e.ownerIndex[seller] = id
			e.listings[id] = listing
			e.recomputeLocked(ident)
			return newError(reasoncodes.ErrPayment,
				"payment of %d to seller %s failed: %v", payment, seller, err)
		}
	}

	e.emitLocked(model.EventPurchased, id, model.PurchasedPayload{
		Seller:   seller,
		Buyer:    buyer,
		Price:    payment,
		NewPrice: ident.CurrentPrice,
	})

	return nil
}

// Unlist withdraws an active listing. Seller only.
func (e *Engine) Unlist(id uint64, caller model.Account) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.identityLocked(id); err != nil {
		return err
	}

	listing, ok := e.listings[id]
	if !ok || !listing.IsListed {
		return newError(reasoncodes.ErrNotListed, "identity %d is not listed", id)
	}
	if caller != listing.Seller {
		return newError(reasoncodes.ErrUnauthorized,
			"account %s is not the seller of identity %d", caller, id)
	}

	delete(e.listings, id)
	e.emitLocked(model.EventUnlisted, id, model.UnlistedPayload{Seller: caller})
	return nil
}

// ListingOf reports the active listing, or a zero-value listing with
// IsListed false when none exists.
func (e *Engine) ListingOf(id uint64) (model.Listing, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.identityLocked(id); err != nil {
		return model.Listing{}, err
	}

	listing, ok := e.listings[id]
	if !ok {
		return model.Listing{IdentityId: id}, nil
	}
	return *listing, nil
}
