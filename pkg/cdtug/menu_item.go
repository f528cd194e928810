package cdtug

// MenuItem is a hotkey hint shown in the bottom bar.
// HotKeys[0] also names the clickable region of the item.
type MenuItem struct {
	Title   string
	HotKeys []string
	Action  func()
}
