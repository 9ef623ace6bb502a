package layout

// PickerLayout holds calculated picker dimensions.
type PickerLayout struct {
	Height       int // total lines drawn
	ListWidth    int
	PreviewWidth int
	BodyHeight   int // lines available to the list and preview panes
}

// CalculatePickerLayout splits the terminal into a list pane and a preview
// pane below the header.
func CalculatePickerLayout(terminalWidth, terminalHeight int, cfg PickerConfig) PickerLayout {
	height := terminalHeight * cfg.HeightPercent / 100
	if height < cfg.MinHeight {
		height = cfg.MinHeight
	}
	if height > terminalHeight && terminalHeight > 0 {
		height = terminalHeight
	}

	body := height - cfg.HeaderLines
	if body < 1 {
		body = 1
	}

	list := terminalWidth * cfg.ListWidthPercent / 100
	if list < 1 {
		list = 1
	}
	preview := terminalWidth - list - cfg.PreviewGap
	if preview < 0 {
		preview = 0
	}

	return PickerLayout{
		Height:       height,
		ListWidth:    list,
		PreviewWidth: preview,
		BodyHeight:   body,
	}
}

// CalculateVisibleListItems computes the start and end indices for a scrollable list.
// Returns (start, end) where items[start:end] should be displayed.
func CalculateVisibleListItems(maxVisible, selectedIdx, totalItems int) (start, end int) {
	if maxVisible <= 0 {
		return 0, 0
	}
	if totalItems <= maxVisible {
		return 0, totalItems
	}

	if selectedIdx >= maxVisible {
		start = selectedIdx - maxVisible + 1
	}

	end = min(start+maxVisible, totalItems)
	return start, end
}
