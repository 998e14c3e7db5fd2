package page

import "context"

// OpenMenu clicks menu so that item becomes addressable. With
// MenuSequential the click and the wait for item are one transition; with
// MenuCombined the menu is waited-for-and-clicked and the item's own lookup
// does the waiting. A configured strategy overrides the call site's.
func (b *Base) OpenMenu(ctx context.Context, menu, item string, strategy MenuStrategy) error {
	switch b.menuStrategy(strategy) {
	case MenuCombined:
		return b.ClickWhenVisible(ctx, menu)
	default:
		return b.PerformAndAwaitTransition(ctx, b.ClickAction(menu), AwaitVisible(item))
	}
}

// OpenMenuAndClick opens menu and clicks item.
func (b *Base) OpenMenuAndClick(ctx context.Context, menu, item string, strategy MenuStrategy) error {
	if err := b.OpenMenu(ctx, menu, item, strategy); err != nil {
		return err
	}
	return b.Click(ctx, item)
}

func (b *Base) menuStrategy(callSite MenuStrategy) MenuStrategy {
	if b.opts.menuStrategy != MenuDefault {
		return b.opts.menuStrategy
	}
	if callSite == MenuDefault {
		return MenuSequential
	}
	return callSite
}
