// Package picker implements an inline fuzzy picker with a preview pane.
package picker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/pathmarks/internal/picker/layout"
	"github.com/nikbrunner/pathmarks/internal/search"
)

// DefaultHeader is the hint line shown above the query.
const DefaultHeader = "Enter: select, Ctrl-x: delete, Ctrl-c: exit"

// Item is one selectable entry.
type Item interface {
	search.Labeler
	Preview() string
	Value() string
}

// Action is what the user asked for when the picker closed.
type Action int

const (
	ActionNone Action = iota
	ActionAccept
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionAccept:
		return "accept"
	case ActionDelete:
		return "delete"
	default:
		return "none"
	}
}

// Result is the outcome of a picker session. Items is empty for ActionNone.
type Result[T Item] struct {
	Action Action
	Items  []T
}

// Options configure a picker.
type Options struct {
	Header        string
	HeightPercent int
	Keys          KeyMap
	Styles        Styles
	Layout        layout.LayoutConfig

	// Clipboard receives yanked values. Defaults to the system clipboard.
	Clipboard func(string) error
}

// DefaultOptions returns options with the default keys, styles and layout.
func DefaultOptions() Options {
	return Options{
		Header: DefaultHeader,
		Keys:   DefaultKeyMap(),
		Styles: DefaultStyles(),
		Layout: layout.DefaultConfig(),
	}
}

// Picker is a bubbletea model that filters items by a fuzzy query.
type Picker[T Item] struct {
	items   []T
	matches []search.Match
	input   textinput.Model

	header string
	keys   KeyMap
	styles Styles
	layout layout.LayoutConfig
	copy   func(string) error

	cursor        int
	marked        map[int]bool   // keyed by index into items
	previews      map[int]string // rendered previews, keyed by index into items
	previewOffset int
	status        string
	width         int
	height        int

	result Result[T]
	done   bool
}

// New creates a picker over items, shown in the given order until a query is typed.
func New[T Item](items []T, opts Options) Picker[T] {
	if opts.Header == "" {
		opts.Header = DefaultHeader
	}
	if opts.Layout == (layout.LayoutConfig{}) {
		opts.Layout = layout.DefaultConfig()
	}
	if opts.HeightPercent > 0 {
		opts.Layout.Picker.HeightPercent = opts.HeightPercent
	}
	if opts.Keys.Accept.Keys() == nil {
		opts.Keys = DefaultKeyMap()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Filter..."
	input.CharLimit = 256
	input.Focus()

	p := Picker[T]{
		items:    items,
		input:    input,
		header:   opts.Header,
		keys:     opts.Keys,
		styles:   opts.Styles,
		layout:   opts.Layout,
		copy:     opts.Clipboard,
		marked:   make(map[int]bool),
		previews: make(map[int]string),
		width:    80,
		height:   24,
	}
	p.matches = search.Filter("", items)
	return p
}

// Init implements tea.Model.
func (p Picker[T]) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p Picker[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Picker[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Cancel):
		p.result = Result[T]{Action: ActionNone}
		p.done = true
		return p, tea.Quit

	case key.Matches(msg, p.keys.Accept):
		item, ok := p.current()
		if !ok {
			return p, nil
		}
		p.result = Result[T]{Action: ActionAccept, Items: []T{item}}
		p.done = true
		return p, tea.Quit

	case key.Matches(msg, p.keys.Delete):
		items := p.selection()
		if len(items) == 0 {
			return p, nil
		}
		p.result = Result[T]{Action: ActionDelete, Items: items}
		p.done = true
		return p, tea.Quit

	case key.Matches(msg, p.keys.Mark):
		if p.cursor < len(p.matches) {
			idx := p.matches[p.cursor].Index
			if p.marked[idx] {
				delete(p.marked, idx)
			} else {
				p.marked[idx] = true
			}
			p.moveCursor(1)
		}
		return p, nil

	case key.Matches(msg, p.keys.Up):
		p.moveCursor(-1)
		return p, nil

	case key.Matches(msg, p.keys.Down):
		p.moveCursor(1)
		return p, nil

	case key.Matches(msg, p.keys.PreviewUp):
		p.scrollPreview(-1)
		return p, nil

	case key.Matches(msg, p.keys.PreviewDown):
		p.scrollPreview(1)
		return p, nil

	case key.Matches(msg, p.keys.Yank):
		item, ok := p.current()
		if !ok {
			return p, nil
		}
		if err := p.copy(item.Value()); err != nil {
			p.status = fmt.Sprintf("Copy failed: %v", err)
		} else {
			p.status = "Copied " + item.Value()
		}
		return p, nil
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.matches = search.Filter(p.input.Value(), p.items)
		p.cursor = 0
		p.previewOffset = 0
		p.status = ""
	}
	return p, cmd
}

func (p *Picker[T]) moveCursor(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.matches) {
		return
	}
	p.cursor = next
	p.previewOffset = 0
}

// scrollPreview moves the preview by half a page in the given direction.
func (p *Picker[T]) scrollPreview(dir int) {
	preview, ok := p.currentPreview()
	if !ok {
		return
	}
	body := p.dimensions().BodyHeight
	step := max(body/2, 1)
	total := strings.Count(preview, "\n") + 1
	p.previewOffset = layout.ClampOffset(p.previewOffset+dir*step, total, body)
}

func (p Picker[T]) current() (T, bool) {
	var zero T
	if p.cursor >= len(p.matches) {
		return zero, false
	}
	return p.items[p.matches[p.cursor].Index], true
}

// currentPreview returns the preview of the item under the cursor. Previews
// read the filesystem, so each item is rendered at most once per session.
func (p Picker[T]) currentPreview() (string, bool) {
	if p.cursor >= len(p.matches) {
		return "", false
	}
	idx := p.matches[p.cursor].Index
	preview, ok := p.previews[idx]
	if !ok {
		preview = p.items[idx].Preview()
		p.previews[idx] = preview
	}
	return preview, true
}

// selection returns the marked items in their original order, or the item
// under the cursor when nothing is marked.
func (p Picker[T]) selection() []T {
	if len(p.marked) == 0 {
		item, ok := p.current()
		if !ok {
			return nil
		}
		return []T{item}
	}

	indexes := make([]int, 0, len(p.marked))
	for idx := range p.marked {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	items := make([]T, len(indexes))
	for i, idx := range indexes {
		items[i] = p.items[idx]
	}
	return items
}

// Result returns the outcome once the picker has quit.
func (p Picker[T]) Result() Result[T] {
	return p.result
}

// Query returns the current filter text.
func (p Picker[T]) Query() string {
	return p.input.Value()
}

func (p Picker[T]) dimensions() layout.PickerLayout {
	return layout.CalculatePickerLayout(p.width, p.height, p.layout.Picker)
}

// View implements tea.Model.
func (p Picker[T]) View() string {
	if p.done {
		return ""
	}

	dims := p.dimensions()

	var b strings.Builder
	b.WriteString(p.styles.Header.Render(p.header))
	b.WriteString("\n")

	b.WriteString(p.input.View())
	b.WriteString("  ")
	b.WriteString(p.styles.Count.Render(fmt.Sprintf("%d/%d", len(p.matches), len(p.items))))
	if len(p.marked) > 0 {
		b.WriteString(p.styles.Count.Render(fmt.Sprintf(" (%d marked)", len(p.marked))))
	}
	if p.status != "" {
		b.WriteString("  ")
		b.WriteString(p.styles.Status.Render(p.status))
	}
	b.WriteString("\n\n")

	listPane := lipgloss.NewStyle().
		Width(dims.ListWidth).
		Height(dims.BodyHeight).
		Render(p.renderList(dims))

	previewPane := lipgloss.NewStyle().
		Width(dims.PreviewWidth).
		Height(dims.BodyHeight).
		PaddingLeft(p.layout.Picker.PreviewGap).
		Render(p.renderPreview(dims))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane))
	return b.String()
}

func (p Picker[T]) renderList(dims layout.PickerLayout) string {
	if len(p.matches) == 0 {
		return p.styles.Empty.Render("No matches")
	}

	start, end := layout.CalculateVisibleListItems(dims.BodyHeight, p.cursor, len(p.matches))
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, p.renderItem(p.matches[i], i == p.cursor, dims.ListWidth))
	}
	return strings.Join(lines, "\n")
}

// renderItem draws one list row, underlining the characters the query matched.
func (p Picker[T]) renderItem(match search.Match, selected bool, maxWidth int) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	mark := " "
	if p.marked[match.Index] {
		mark = p.styles.Marker.Render("*")
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var line strings.Builder
	for i, r := range p.items[match.Index].Label() {
		if matchSet[i] {
			line.WriteString("\033[1;4m")
			line.WriteRune(r)
			line.WriteString("\033[22;24m")
		} else {
			line.WriteRune(r)
		}
	}

	label := layout.TruncateANSIAware(line.String(), maxWidth-3, p.layout.Text)

	style := p.styles.Item
	if selected {
		style = p.styles.Selected
	}
	return cursor + mark + style.Render(label)
}

func (p Picker[T]) renderPreview(dims layout.PickerLayout) string {
	preview, ok := p.currentPreview()
	if !ok {
		return ""
	}
	width := dims.PreviewWidth - p.layout.Picker.PreviewGap
	lines := layout.ClipLines(preview, width, dims.BodyHeight, p.previewOffset, p.layout.Text)
	return p.styles.Preview.Render(strings.Join(lines, "\n"))
}
