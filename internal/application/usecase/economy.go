package usecase

import (
	"go.uber.org/zap"

	"vivaleve/internal/domain"
)

// BuyItem purchases a catalog item. Re-buying an owned item is a silent
// no-op: it costs nothing and changes nothing. An unaffordable item is
// rejected with the document untouched.
func (e *Engine) BuyItem(doc *domain.Progress, itemID string) ([]domain.Effect, error) {
	item, ok := domain.FindItem(itemID)
	if !ok {
		return nil, domain.ErrUnknownItem
	}
	if doc.Owns(item.ID) {
		return nil, nil
	}
	if doc.Coins < item.Price {
		return nil, domain.ErrInsufficientFunds
	}

	doc.Coins -= item.Price
	doc.Inventory = append(doc.Inventory, item.ID)
	return []domain.Effect{domain.CelebrateEffect{Colors: e.ConfettiColors(doc)}}, nil
}

// EquipItem activates an owned item in its category slot. Equipping an
// item the account does not own changes nothing.
func (e *Engine) EquipItem(doc *domain.Progress, itemID string) error {
	item, ok := domain.FindItem(itemID)
	if !ok {
		return domain.ErrUnknownItem
	}
	if !doc.Owns(item.ID) {
		e.log.Warn("equip_not_owned", zap.String("item_id", item.ID))
		return nil
	}

	switch item.Type {
	case domain.ItemTheme:
		doc.ActiveCosmetics.Theme = item.ID
	case domain.ItemConfetti:
		doc.ActiveCosmetics.Confetti = item.ID
	case domain.ItemFrame:
		doc.ActiveCosmetics.Frame = item.ID
	case domain.ItemEffect:
		doc.ActiveCosmetics.Effect = item.ID
	}
	return nil
}
