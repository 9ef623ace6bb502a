package picker

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

type testItem struct {
	label   string
	preview string
	value   string
}

func (i testItem) Label() string   { return i.label }
func (i testItem) Preview() string { return i.preview }
func (i testItem) Value() string   { return i.value }

func testItems() []testItem {
	return []testItem{
		{label: "docs", preview: "docs preview", value: "/home/u/docs"},
		{label: "src", preview: "src preview", value: "/home/u/src"},
		{label: "notes.md", preview: "# notes", value: "/home/u/notes.md"},
	}
}

func newTestPicker(items []testItem) Picker[testItem] {
	opts := DefaultOptions()
	opts.Clipboard = func(string) error { return nil }
	return New(items, opts)
}

func send(t *testing.T, p Picker[testItem], msgs ...tea.Msg) (Picker[testItem], tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var m tea.Model
		m, cmd = p.Update(msg)
		p = m.(Picker[testItem])
	}
	return p, cmd
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPicker_InitialState(t *testing.T) {
	p := newTestPicker(testItems())

	assert.Equal(t, p.cursor, 0)
	assert.Equal(t, len(p.matches), 3)
	for i, m := range p.matches {
		assert.Equal(t, m.Index, i)
	}
	assert.Equal(t, p.Result().Action, ActionNone)
}

func TestPicker_Accept(t *testing.T) {
	p, cmd := send(t, newTestPicker(testItems()), keyMsg(tea.KeyDown), keyMsg(tea.KeyEnter))

	assert.Assert(t, cmd != nil, "expected quit command")
	res := p.Result()
	assert.Equal(t, res.Action, ActionAccept)
	assert.Equal(t, len(res.Items), 1)
	assert.Equal(t, res.Items[0].Value(), "/home/u/src")
}

func TestPicker_AcceptWithoutMatchesIsIgnored(t *testing.T) {
	p, cmd := send(t, newTestPicker(testItems()), runes("zzz"), keyMsg(tea.KeyEnter))

	assert.Equal(t, len(p.matches), 0)
	assert.Assert(t, cmd == nil)
	assert.Equal(t, p.Result().Action, ActionNone)
	assert.Equal(t, p.done, false)
}

func TestPicker_Cancel(t *testing.T) {
	for _, kt := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		t.Run(kt.String(), func(t *testing.T) {
			p, cmd := send(t, newTestPicker(testItems()), keyMsg(kt))

			assert.Assert(t, cmd != nil)
			assert.Equal(t, p.Result().Action, ActionNone)
			assert.Equal(t, len(p.Result().Items), 0)
			assert.Equal(t, p.View(), "")
		})
	}
}

func TestPicker_DeleteCursorItem(t *testing.T) {
	p, cmd := send(t, newTestPicker(testItems()), keyMsg(tea.KeyCtrlX))

	assert.Assert(t, cmd != nil)
	res := p.Result()
	assert.Equal(t, res.Action, ActionDelete)
	assert.Equal(t, len(res.Items), 1)
	assert.Equal(t, res.Items[0].label, "docs")
}

func TestPicker_DeleteMarkedItems(t *testing.T) {
	// Mark notes.md first, then docs; result keeps the original order.
	p, _ := send(t, newTestPicker(testItems()),
		keyMsg(tea.KeyDown), keyMsg(tea.KeyDown), keyMsg(tea.KeyTab),
		keyMsg(tea.KeyUp), keyMsg(tea.KeyUp), keyMsg(tea.KeyTab),
		keyMsg(tea.KeyCtrlX),
	)

	res := p.Result()
	assert.Equal(t, res.Action, ActionDelete)
	labels := make([]string, len(res.Items))
	for i, it := range res.Items {
		labels[i] = it.label
	}
	assert.DeepEqual(t, labels, []string{"docs", "notes.md"})
}

func TestPicker_MarkToggles(t *testing.T) {
	p, _ := send(t, newTestPicker(testItems()), keyMsg(tea.KeyTab), keyMsg(tea.KeyUp), keyMsg(tea.KeyTab))
	assert.Equal(t, len(p.marked), 0)
}

func TestPicker_Navigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want int
	}{
		{"down", []tea.Msg{keyMsg(tea.KeyDown)}, 1},
		{"ctrl+j", []tea.Msg{keyMsg(tea.KeyCtrlJ), keyMsg(tea.KeyCtrlJ)}, 2},
		{"ctrl+n", []tea.Msg{keyMsg(tea.KeyCtrlN)}, 1},
		{"stops at last", []tea.Msg{keyMsg(tea.KeyDown), keyMsg(tea.KeyDown), keyMsg(tea.KeyDown)}, 2},
		{"up stops at first", []tea.Msg{keyMsg(tea.KeyUp)}, 0},
		{"ctrl+k", []tea.Msg{keyMsg(tea.KeyDown), keyMsg(tea.KeyCtrlK)}, 0},
		{"ctrl+p", []tea.Msg{keyMsg(tea.KeyDown), keyMsg(tea.KeyCtrlP)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := send(t, newTestPicker(testItems()), tt.keys...)
			assert.Equal(t, p.cursor, tt.want)
		})
	}
}

func TestPicker_QueryFilters(t *testing.T) {
	p, _ := send(t, newTestPicker(testItems()), keyMsg(tea.KeyDown), runes("src"))

	assert.Equal(t, p.Query(), "src")
	assert.Equal(t, p.cursor, 0)
	assert.Equal(t, len(p.matches), 1)
	assert.Equal(t, p.items[p.matches[0].Index].label, "src")
}

func TestPicker_ClearingQueryRestoresOrder(t *testing.T) {
	p, _ := send(t, newTestPicker(testItems()), runes("n"), keyMsg(tea.KeyBackspace))

	assert.Equal(t, p.Query(), "")
	assert.Equal(t, len(p.matches), 3)
	assert.Equal(t, p.matches[0].Index, 0)
}

func TestPicker_Yank(t *testing.T) {
	var copied string
	opts := DefaultOptions()
	opts.Clipboard = func(s string) error {
		copied = s
		return nil
	}

	p, cmd := send(t, New(testItems(), opts), keyMsg(tea.KeyCtrlY))

	assert.Assert(t, cmd == nil)
	assert.Equal(t, copied, "/home/u/docs")
	assert.Equal(t, p.status, "Copied /home/u/docs")
	assert.Equal(t, p.done, false)
}

func TestPicker_YankFailure(t *testing.T) {
	opts := DefaultOptions()
	opts.Clipboard = func(string) error { return errors.New("no clipboard") }

	p, _ := send(t, New(testItems(), opts), keyMsg(tea.KeyCtrlY))
	assert.Check(t, is.Contains(p.status, "no clipboard"))
}

func TestPicker_ScrollPreview(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "line"
	}
	items := []testItem{{label: "big", preview: strings.Join(lines, "\n"), value: "/big"}}

	p, _ := send(t, newTestPicker(items), tea.WindowSizeMsg{Width: 80, Height: 40})
	body := p.dimensions().BodyHeight

	p, _ = send(t, p, keyMsg(tea.KeyPgDown))
	assert.Equal(t, p.previewOffset, body/2)

	p, _ = send(t, p, keyMsg(tea.KeyPgUp), keyMsg(tea.KeyPgUp))
	assert.Equal(t, p.previewOffset, 0)
}

type countingItem struct {
	label string
	calls *int
}

func (i countingItem) Label() string { return i.label }
func (i countingItem) Value() string { return "/" + i.label }
func (i countingItem) Preview() string {
	*i.calls++
	return i.label + " preview"
}

func TestPicker_PreviewRenderedOncePerItem(t *testing.T) {
	var first, second int
	items := []countingItem{{label: "a", calls: &first}, {label: "b", calls: &second}}

	var m tea.Model = New(items, DefaultOptions())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	for range 10 {
		// cursor blinks and redraws without moving
		m, _ = m.Update(struct{}{})
		assert.Check(t, is.Contains(m.View(), "a preview"))
	}
	assert.Equal(t, first, 1)
	assert.Equal(t, second, 0)

	m, _ = m.Update(keyMsg(tea.KeyDown))
	m.View()
	m, _ = m.Update(keyMsg(tea.KeyUp))
	m.View()
	m, _ = m.Update(keyMsg(tea.KeyPgDown))
	m.View()
	assert.Equal(t, first, 1)
	assert.Equal(t, second, 1)
}

func TestPicker_View(t *testing.T) {
	p, _ := send(t, newTestPicker(testItems()), tea.WindowSizeMsg{Width: 100, Height: 40})
	view := p.View()

	assert.Check(t, is.Contains(view, DefaultHeader))
	assert.Check(t, is.Contains(view, "3/3"))
	assert.Check(t, is.Contains(view, "docs preview"))
	assert.Check(t, is.Contains(view, "notes.md"))
}

func TestPicker_ViewNoMatches(t *testing.T) {
	p, _ := send(t, newTestPicker(testItems()), runes("zzz"))
	assert.Check(t, is.Contains(p.View(), "No matches"))
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, ActionNone.String(), "none")
	assert.Equal(t, ActionAccept.String(), "accept")
	assert.Equal(t, ActionDelete.String(), "delete")
}
