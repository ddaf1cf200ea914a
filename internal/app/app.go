// Package app contains the root application model.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"justcode/internal/config"
	"justcode/internal/keys"
	"justcode/internal/log"
	"justcode/internal/pubsub"
	"justcode/internal/session"
	"justcode/internal/shell"
	"justcode/internal/steps"
	"justcode/internal/textfile"
	"justcode/internal/ui/editor"
	"justcode/internal/ui/filetree"
	"justcode/internal/ui/help"
	"justcode/internal/ui/modal"
	"justcode/internal/ui/panes"
	"justcode/internal/ui/preview"
	"justcode/internal/ui/shellpanel"
	"justcode/internal/ui/statusbar"
	"justcode/internal/ui/styles"
	"justcode/internal/ui/tabs"
	"justcode/internal/ui/toaster"
	"justcode/internal/watcher"
)

const (
	treePaneWidth   = 32
	shellPaneHeight = 12
	toastDuration   = 3 * time.Second
)

// focusArea identifies which panel receives key input.
type focusArea int

const (
	focusEditor focusArea = iota
	focusTree
	focusShell
	focusPreview
)

// pendingAction is what a confirmation modal will do when confirmed.
type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingQuit
	pendingReload
	pendingCloseTab
	pendingCloseOthers
)

// openFile is the in-memory state for one open tab.
type openFile struct {
	file  *textfile.File
	ed    editor.Model
	saved string // content at last load or save, for change counts
}

// Config holds everything the root model needs at startup.
type Config struct {
	Config     config.Config
	ConfigPath string
	WorkDir    string

	// Store persists sessions; nil disables session persistence.
	Store *session.Store
	// Restore re-opens the previous session's tabs before Paths.
	Restore bool
	// Paths are files to open at startup.
	Paths []string
}

// Model is the root application state.
type Model struct {
	cfg        config.Config
	configPath string
	workDir    string
	keys       keys.KeyMap

	tabs  tabs.Model
	files map[string]*openFile

	tree     filetree.Model
	treeOK   bool
	showTree bool

	shellProc  *shell.Shell
	shellPanel shellpanel.Model
	showShell  bool

	preview     preview.Model
	showPreview bool

	status     statusbar.Model
	showStatus bool

	helpView help.Model
	showHelp bool

	confirm       modal.Model
	showConfirm   bool
	confirmAction pendingAction
	confirmPath   string

	toast toaster.Model

	highlighter *steps.Highlighter

	watch           *watcher.Watcher
	ctx             context.Context
	cancel          context.CancelFunc
	watcherListener *pubsub.ContinuousListener[string]
	shellListener   *pubsub.ContinuousListener[string]

	store *session.Store

	focus  focusArea
	width  int
	height int
}

// New creates the root model, restoring the previous session when asked.
func New(cfg Config) (Model, error) {
	workDir, err := filepath.Abs(cfg.WorkDir)
	if err != nil {
		return Model{}, fmt.Errorf("resolving workspace %s: %w", cfg.WorkDir, err)
	}

	tree, err := filetree.New(workDir, cfg.Config.Bookmarks)
	if err != nil {
		return Model{}, fmt.Errorf("reading workspace: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		cfg:         cfg.Config,
		configPath:  cfg.ConfigPath,
		workDir:     workDir,
		keys:        keys.DefaultKeyMap(),
		tabs:        tabs.New(),
		files:       make(map[string]*openFile),
		tree:        tree,
		treeOK:      true,
		showTree:    cfg.Config.UI.ShowFileTree,
		preview:     preview.New(cfg.Config.UI.MarkdownStyle),
		status:      statusbar.New(),
		showStatus:  cfg.Config.UI.ShowStatusBar,
		helpView:    help.New(),
		toast:       toaster.New(),
		highlighter: steps.NewHighlighter(cfg.Config.SyntaxTheme()),
		ctx:         ctx,
		cancel:      cancel,
		store:       cfg.Store,
	}

	// The app works without a watcher; changed files just go unnoticed.
	if w, err := watcher.New(watcher.DefaultConfig()); err == nil {
		w.Start()
		m.watch = w
		m.watcherListener = pubsub.NewContinuousListener(ctx, w.Events())
		// Keep the file tree current as the workspace root changes.
		if err := w.WatchDir(workDir); err != nil {
			log.ErrorErr(log.CatWatcher, "workspace watch failed", err, "path", workDir)
		}
	} else {
		log.ErrorErr(log.CatWatcher, "watcher unavailable", err)
	}

	m.shellProc = shell.New()
	m.shellPanel = shellpanel.New(m.shellProc)
	m.shellListener = pubsub.NewContinuousListener(ctx, m.shellProc.Events())

	if cfg.Store != nil && cfg.Restore {
		m.restoreSession()
	}
	for _, path := range cfg.Paths {
		if err := m.openPath(path); err != nil {
			log.ErrorErr(log.CatFile, "open at startup failed", err, "path", path)
		}
	}
	m.focusEditorPanel()
	m.syncActive()

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.watcherListener != nil {
		cmds = append(cmds, m.watcherListener.Listen())
	}
	if m.shellListener != nil {
		cmds = append(cmds, m.shellListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case pubsub.Event[string]:
		return m.handleEvent(msg)

	case editor.ContentChangedMsg:
		m.syncActive()
		return m, nil

	case filetree.OpenFileMsg:
		if err := m.openPath(msg.Path); err != nil {
			log.ErrorErr(log.CatFile, "open failed", err, "path", msg.Path)
			return m, m.showToast(openErrorMessage(err), toaster.StyleError)
		}
		m.focus = focusEditor
		m.focusEditorPanel()
		m.layout()
		m.syncActive()
		return m, nil

	case filetree.ToggleBookmarkMsg:
		return m.toggleBookmark(msg)

	case modal.ConfirmMsg:
		m.showConfirm = false
		action, path := m.confirmAction, m.confirmPath
		m.confirmAction, m.confirmPath = pendingNone, ""
		switch action {
		case pendingQuit:
			return m, m.quit()
		case pendingReload:
			return m, m.doReload(path)
		case pendingCloseTab:
			m.doCloseTab(path)
			return m, nil
		case pendingCloseOthers:
			m.doCloseOthers(path)
			return m, nil
		}
		return m, nil

	case modal.CancelMsg:
		m.showConfirm = false
		m.confirmAction, m.confirmPath = pendingNone, ""
		return m, nil

	case toaster.DismissMsg:
		m.toast = m.toast.Hide()
		return m, nil
	}

	return m, nil
}

// handleKey routes key input, overlays first, then global bindings, then the
// focused panel.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConfirm {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.FocusEditor) || key.Matches(msg, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.requestQuit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.helpView = m.helpView.SetSize(m.width, m.height)
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m, m.save()

	case key.Matches(msg, m.keys.Reload):
		return m.requestReload()

	case key.Matches(msg, m.keys.CloseTab):
		return m.requestCloseTab()

	case key.Matches(msg, m.keys.CloseOthers):
		return m.requestCloseOthers()

	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Next()
		m.afterTabSwitch()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.Prev()
		m.afterTabSwitch()
		return m, nil

	case key.Matches(msg, m.keys.ToggleTree):
		m.showTree = !m.showTree
		if !m.showTree && m.focus == focusTree {
			m.focus = focusEditor
		}
		m.focusEditorPanel()
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.ToggleShell):
		return m.toggleShell()

	case key.Matches(msg, m.keys.TogglePreview):
		m.showPreview = !m.showPreview
		if !m.previewVisible() && m.focus == focusPreview {
			m.focus = focusEditor
		}
		m.focusEditorPanel()
		m.layout()
		m.syncActive()
		return m, nil

	case key.Matches(msg, m.keys.FocusNext):
		m.cycleFocus()
		return m, nil

	case key.Matches(msg, m.keys.FocusEditor):
		if m.focus != focusEditor {
			m.focus = focusEditor
			m.focusEditorPanel()
			return m, nil
		}
	}

	return m.routeKey(msg)
}

// routeKey delivers a key to whichever panel holds focus.
func (m Model) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusTree:
		var cmd tea.Cmd
		m.tree, cmd = m.tree.Update(msg)
		return m, cmd

	case focusShell:
		var cmd tea.Cmd
		m.shellPanel, cmd = m.shellPanel.Update(msg)
		return m, cmd

	case focusPreview:
		switch msg.String() {
		case "up", "k":
			m.preview.ScrollUp(1)
		case "down", "j":
			m.preview.ScrollDown(1)
		case "pgup":
			m.preview.ScrollUp(10)
		case "pgdown":
			m.preview.ScrollDown(10)
		}
		return m, nil

	default:
		path := m.tabs.ActivePath()
		of, ok := m.files[path]
		if !ok {
			return m, nil
		}
		var cmd tea.Cmd
		of.ed, cmd = of.ed.Update(msg)
		m.syncActive()
		return m, cmd
	}
}

// handleMouse routes tab clicks and preview wheel scrolling.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
		for i := range m.tabs.Count() {
			if z := zone.Get(tabs.ZoneID(i)); z != nil && z.InBounds(msg) {
				m.tabs.SetActive(i)
				m.afterTabSwitch()
				return m, nil
			}
		}
	}

	if m.previewVisible() {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.preview.ScrollUp(3)
		case tea.MouseButtonWheelDown:
			m.preview.ScrollDown(3)
		}
	}
	return m, nil
}

// handleEvent dispatches broker events from the watcher and the shell, then
// re-arms the matching listener.
func (m Model) handleEvent(evt pubsub.Event[string]) (tea.Model, tea.Cmd) {
	switch evt.Type {
	case pubsub.FileModifiedEvent, pubsub.FileDeletedEvent, pubsub.FileRenamedEvent, pubsub.FileCreatedEvent:
		cmd := m.handleFileEvent(evt)
		if evt.Type != pubsub.FileModifiedEvent {
			// Creates, deletes, and renames change the workspace listing.
			m.tree.Reload()
		}
		if m.watcherListener != nil {
			return m, tea.Batch(cmd, m.watcherListener.Listen())
		}
		return m, cmd

	case pubsub.ShellStdoutEvent, pubsub.ShellStderrEvent, pubsub.ShellExitedEvent:
		var cmd tea.Cmd
		m.shellPanel, cmd = m.shellPanel.Update(evt)
		if m.shellListener != nil {
			return m, tea.Batch(cmd, m.shellListener.Listen())
		}
		return m, cmd
	}

	// Unknown event type; keep both listeners alive.
	var cmds []tea.Cmd
	if m.watcherListener != nil {
		cmds = append(cmds, m.watcherListener.Listen())
	}
	if m.shellListener != nil {
		cmds = append(cmds, m.shellListener.Listen())
	}
	return m, tea.Batch(cmds...)
}

// handleFileEvent reacts to an outside change to an open file.
func (m *Model) handleFileEvent(evt pubsub.Event[string]) tea.Cmd {
	path := evt.Payload
	of, open := m.files[path]
	if !open {
		return nil
	}
	base := filepath.Base(path)

	switch evt.Type {
	case pubsub.FileModifiedEvent, pubsub.FileCreatedEvent:
		// Our own saves also trip the watcher; the mod time check skips them.
		if !of.file.ModifiedOnDisk() {
			return nil
		}
		if of.ed.Modified() || !m.cfg.AutoReload {
			return m.showToast(base+" changed on disk (ctrl+r to reload)", toaster.StyleWarn)
		}
		return m.doReload(path)

	case pubsub.FileDeletedEvent:
		return m.showToast(base+" was deleted on disk", toaster.StyleWarn)

	case pubsub.FileRenamedEvent:
		return m.showToast(base+" was moved or renamed on disk", toaster.StyleWarn)
	}
	return nil
}

// openPath opens a file in a new tab, or activates its existing tab. A path
// that does not exist yet opens as an empty buffer and is created on save.
func (m *Model) openPath(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	if _, ok := m.files[abs]; ok {
		m.tabs.Open(abs)
		m.afterTabSwitch()
		return nil
	}

	f, err := textfile.Load(abs)
	switch {
	case errors.Is(err, os.ErrNotExist):
		f = textfile.New(abs)
	case err != nil:
		return err
	}

	ed := editor.New()
	if m.cfg.Editor.TabWidth > 0 {
		ed.SetTabWidth(m.cfg.Editor.TabWidth)
	}
	if isSteps(abs) {
		ed.SetLexer(m.highlighter)
	}
	ed.SetContent(f.Content)

	m.files[abs] = &openFile{file: f, ed: ed, saved: f.Content}
	m.tabs.Open(abs)

	if m.watch != nil {
		if err := m.watch.Watch(abs); err != nil {
			log.ErrorErr(log.CatWatcher, "watch failed", err, "path", abs)
		}
	}

	m.afterTabSwitch()
	return nil
}

// save writes the active buffer back to disk.
func (m *Model) save() tea.Cmd {
	path := m.tabs.ActivePath()
	of, ok := m.files[path]
	if !ok {
		return nil
	}

	if err := of.file.Save(of.ed.Content()); err != nil {
		return m.showToast("save failed: "+err.Error(), toaster.StyleError)
	}
	of.saved = of.ed.Content()
	of.ed.ClearModified()
	m.tabs.SetModified(path, false)
	m.syncActive()
	return m.showToast("saved "+filepath.Base(path), toaster.StyleSuccess)
}

// requestReload reloads the active file, asking first when there are
// unsaved edits.
func (m Model) requestReload() (tea.Model, tea.Cmd) {
	path := m.tabs.ActivePath()
	of, ok := m.files[path]
	if !ok {
		return m, nil
	}

	if of.ed.Modified() {
		m.openConfirm(modal.Config{
			Title:          "Reload from disk",
			Message:        filepath.Base(path) + " has unsaved changes. Discard them and reload?",
			ConfirmLabel:   "Reload",
			ConfirmVariant: modal.ButtonDanger,
		}, pendingReload, path)
		return m, nil
	}
	return m, m.doReload(path)
}

// doReload replaces the buffer with the on-disk content.
func (m *Model) doReload(path string) tea.Cmd {
	of, ok := m.files[path]
	if !ok {
		return nil
	}

	f, err := textfile.Load(path)
	if err != nil {
		return m.showToast("reload failed: "+err.Error(), toaster.StyleError)
	}
	of.file = f
	of.saved = f.Content
	of.ed.SetContent(f.Content)
	m.tabs.SetModified(path, false)
	m.syncActive()
	return m.showToast("reloaded "+filepath.Base(path), toaster.StyleSuccess)
}

// requestCloseTab closes the active tab, asking first when it has unsaved
// edits.
func (m Model) requestCloseTab() (tea.Model, tea.Cmd) {
	path := m.tabs.ActivePath()
	of, ok := m.files[path]
	if !ok {
		return m, nil
	}

	if of.ed.Modified() {
		m.openConfirm(modal.Config{
			Title:          "Close tab",
			Message:        filepath.Base(path) + " has unsaved changes. Close without saving?",
			ConfirmLabel:   "Close",
			ConfirmVariant: modal.ButtonDanger,
		}, pendingCloseTab, path)
		return m, nil
	}
	m.doCloseTab(path)
	return m, nil
}

func (m *Model) doCloseTab(path string) {
	for i, p := range m.tabs.Paths() {
		if p == path {
			m.tabs.Close(i)
			break
		}
	}
	delete(m.files, path)
	if m.watch != nil {
		if err := m.watch.Unwatch(path); err != nil {
			log.ErrorErr(log.CatWatcher, "unwatch failed", err, "path", path)
		}
	}
	m.afterTabSwitch()
}

// requestCloseOthers closes every tab except the active one, asking first
// when any of them has unsaved edits.
func (m Model) requestCloseOthers() (tea.Model, tea.Cmd) {
	active := m.tabs.ActivePath()
	if active == "" || m.tabs.Count() < 2 {
		return m, nil
	}

	dirty := 0
	for path, of := range m.files {
		if path != active && of.ed.Modified() {
			dirty++
		}
	}
	if dirty > 0 {
		noun := "tab has"
		if dirty > 1 {
			noun = "tabs have"
		}
		m.openConfirm(modal.Config{
			Title:          "Close other tabs",
			Message:        fmt.Sprintf("%d other %s unsaved changes. Close them anyway?", dirty, noun),
			ConfirmLabel:   "Close",
			ConfirmVariant: modal.ButtonDanger,
		}, pendingCloseOthers, active)
		return m, nil
	}
	m.doCloseOthers(active)
	return m, nil
}

func (m *Model) doCloseOthers(active string) {
	for i, p := range m.tabs.Paths() {
		if p != active {
			continue
		}
		for _, path := range m.tabs.CloseOthers(i) {
			delete(m.files, path)
			if m.watch != nil {
				if err := m.watch.Unwatch(path); err != nil {
					log.ErrorErr(log.CatWatcher, "unwatch failed", err, "path", path)
				}
			}
		}
		break
	}
	m.afterTabSwitch()
}

// requestQuit quits, asking first when any open buffer has unsaved edits.
func (m Model) requestQuit() (tea.Model, tea.Cmd) {
	dirty := 0
	for _, of := range m.files {
		if of.ed.Modified() {
			dirty++
		}
	}
	if dirty > 0 {
		noun := "file has"
		if dirty > 1 {
			noun = "files have"
		}
		m.openConfirm(modal.Config{
			Title:          "Unsaved changes",
			Message:        fmt.Sprintf("%d %s unsaved changes. Quit anyway?", dirty, noun),
			ConfirmLabel:   "Quit",
			ConfirmVariant: modal.ButtonDanger,
		}, pendingQuit, "")
		return m, nil
	}
	return m, m.quit()
}

// quit persists the session and stops the program.
func (m *Model) quit() tea.Cmd {
	m.saveSession()
	return tea.Quit
}

// toggleShell shows or hides the shell panel, starting the shell process the
// first time it is shown.
func (m Model) toggleShell() (tea.Model, tea.Cmd) {
	m.showShell = !m.showShell
	if m.showShell {
		// An exited shell is restarted the next time the panel opens.
		if !m.shellProc.Running() {
			if err := m.shellProc.Start(shell.Config{WorkDir: m.workDir}); err != nil {
				m.showShell = false
				return m, m.showToast("shell failed to start: "+err.Error(), toaster.StyleError)
			}
			if m.shellPanel.Exited() {
				m.shellPanel.Reset()
			}
		}
		m.focus = focusShell
	} else if m.focus == focusShell {
		m.focus = focusEditor
	}
	m.focusEditorPanel()
	m.layout()
	return m, nil
}

// toggleBookmark persists a bookmark change and refreshes the tree.
func (m Model) toggleBookmark(msg filetree.ToggleBookmarkMsg) (tea.Model, tea.Cmd) {
	var err error
	if msg.Bookmark {
		err = config.AddBookmark(m.configPath, msg.Path, m.cfg.Bookmarks)
	} else {
		err = config.RemoveBookmark(m.configPath, msg.Path, m.cfg.Bookmarks)
	}
	if err != nil {
		log.ErrorErr(log.CatConfig, "bookmark update failed", err, "path", msg.Path)
		return m, m.showToast("bookmark update failed: "+err.Error(), toaster.StyleError)
	}

	if msg.Bookmark {
		m.cfg.Bookmarks = append(m.cfg.Bookmarks, msg.Path)
	} else {
		kept := m.cfg.Bookmarks[:0:0]
		for _, b := range m.cfg.Bookmarks {
			if b != msg.Path {
				kept = append(kept, b)
			}
		}
		m.cfg.Bookmarks = kept
	}
	m.tree.SetBookmarks(m.cfg.Bookmarks)

	verb := "bookmarked"
	if !msg.Bookmark {
		verb = "removed bookmark for"
	}
	return m, m.showToast(verb+" "+filepath.Base(msg.Path), toaster.StyleSuccess)
}

// cycleFocus moves focus to the next visible panel.
func (m *Model) cycleFocus() {
	order := []focusArea{focusEditor}
	if m.showTree {
		order = append(order, focusTree)
	}
	if m.showShell {
		order = append(order, focusShell)
	}
	if m.previewVisible() {
		order = append(order, focusPreview)
	}

	current := 0
	for i, area := range order {
		if area == m.focus {
			current = i
			break
		}
	}
	m.focus = order[(current+1)%len(order)]
	m.focusEditorPanel()
}

// focusEditorPanel applies the focus flag to components that track it.
func (m *Model) focusEditorPanel() {
	if m.focus == focusShell {
		m.shellPanel.Focus()
	} else {
		m.shellPanel.Blur()
	}
	path := m.tabs.ActivePath()
	for p, of := range m.files {
		if p == path && m.focus == focusEditor {
			of.ed.Focus()
		} else {
			of.ed.Blur()
		}
	}
}

// afterTabSwitch refreshes layout and derived state once the active tab
// changed.
func (m *Model) afterTabSwitch() {
	m.focusEditorPanel()
	m.layout()
	m.syncActive()
}

// syncActive refreshes the tab marker, status bar, and preview from the
// active buffer.
func (m *Model) syncActive() {
	path := m.tabs.ActivePath()
	of, ok := m.files[path]
	if !ok {
		m.status.SetInfo(statusbar.Info{})
		return
	}

	m.tabs.SetModified(path, of.ed.Modified())

	row, col := of.ed.CursorPosition()
	added, removed := statusbar.CountChanges(of.saved, of.ed.Content())
	m.status.SetInfo(statusbar.Info{
		Path:       displayPath(m.workDir, path),
		Line:       row + 1,
		Col:        col + 1,
		Modified:   of.ed.Modified(),
		Added:      added,
		Removed:    removed,
		Language:   languageFor(path),
		LineEnding: of.file.LineEnding.String(),
		Encoding:   of.file.Encoding.String(),
	})

	if m.previewVisible() {
		m.preview.SetContent(of.ed.Content())
	}
}

// previewVisible reports whether the preview pane should render: toggled on
// and the active file is markdown.
func (m Model) previewVisible() bool {
	return m.showPreview && isMarkdown(m.tabs.ActivePath())
}

// openConfirm arms the confirmation modal.
func (m *Model) openConfirm(cfg modal.Config, action pendingAction, path string) {
	m.confirm = modal.New(cfg)
	m.confirm.SetSize(m.width, m.height)
	m.showConfirm = true
	m.confirmAction = action
	m.confirmPath = path
}

func (m *Model) showToast(message string, style toaster.Style) tea.Cmd {
	m.toast = m.toast.Show(message, style)
	return toaster.ScheduleDismiss(toastDuration)
}

// layout distributes the window between the visible panels.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	m.tabs.SetWidth(m.width)
	m.status.SetWidth(m.width)
	m.helpView = m.helpView.SetSize(m.width, m.height)
	if m.showConfirm {
		m.confirm.SetSize(m.width, m.height)
	}

	statusH := 0
	if m.showStatus {
		statusH = 1
	}
	shellH := 0
	if m.showShell {
		shellH = shellPaneHeight
	}
	mainH := max(m.height-1-statusH-shellH, 3)

	treeW := 0
	if m.showTree {
		treeW = treePaneWidth
		m.tree.SetSize(treeW-2, mainH-2)
	}

	editorW := max(m.width-treeW, 10)
	if m.previewVisible() {
		previewW := editorW / 2
		editorW -= previewW
		m.preview.SetSize(previewW-2, mainH-2)
	}

	if of, ok := m.files[m.tabs.ActivePath()]; ok {
		of.ed.SetSize(editorW-2, mainH-2)
	}

	if m.showShell {
		m.shellPanel.SetSize(m.width-2, shellH-2)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	statusH := 0
	if m.showStatus {
		statusH = 1
	}
	shellH := 0
	if m.showShell {
		shellH = shellPaneHeight
	}
	mainH := max(m.height-1-statusH-shellH, 3)

	var columns []string
	treeW := 0
	if m.showTree {
		treeW = treePaneWidth
		columns = append(columns, panes.Render(panes.Config{
			Content: m.tree.View(),
			Width:   treeW,
			Height:  mainH,
			Title:   "Files",
			Focused: m.focus == focusTree,
		}))
	}

	editorW := max(m.width-treeW, 10)
	previewW := 0
	if m.previewVisible() {
		previewW = editorW / 2
		editorW -= previewW
	}

	columns = append(columns, panes.Render(panes.Config{
		Content:     m.editorContent(),
		Width:       editorW,
		Height:      mainH,
		Title:       m.editorTitle(),
		BottomRight: m.editorFooter(),
		Focused:     m.focus == focusEditor,
	}))

	if previewW > 0 {
		columns = append(columns, panes.Render(panes.Config{
			Content: m.preview.View(),
			Width:   previewW,
			Height:  mainH,
			Title:   "Preview",
			Focused: m.focus == focusPreview,
		}))
	}

	rows := []string{m.tabBar(), lipgloss.JoinHorizontal(lipgloss.Top, columns...)}
	if m.showShell {
		rows = append(rows, panes.Render(panes.Config{
			Content: m.shellPanel.View(),
			Width:   m.width,
			Height:  shellH,
			Title:   "Shell",
			Focused: m.focus == focusShell,
		}))
	}
	if m.showStatus {
		rows = append(rows, m.status.View())
	}
	view := lipgloss.JoinVertical(lipgloss.Left, rows...)

	if m.showConfirm {
		view = m.confirm.Overlay(view)
	}
	if m.showHelp {
		view = m.helpView.Overlay(view)
	}
	if m.toast.Visible() {
		view = m.toast.Overlay(view, m.width, m.height)
	}

	return zone.Scan(view)
}

// tabBar renders the tab strip, or the app name when nothing is open.
func (m Model) tabBar() string {
	if m.tabs.Count() == 0 {
		return lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Render(" justcode")
	}
	return m.tabs.View()
}

func (m Model) editorContent() string {
	path := m.tabs.ActivePath()
	if of, ok := m.files[path]; ok {
		return of.ed.View()
	}
	return lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Render("\n  Open a file from the tree, or press ctrl+? for help.")
}

func (m Model) editorTitle() string {
	path := m.tabs.ActivePath()
	if path == "" {
		return "Editor"
	}
	return filepath.Base(path)
}

func (m Model) editorFooter() string {
	of, ok := m.files[m.tabs.ActivePath()]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d lines", of.ed.LineCount())
}

// restoreSession re-opens the tabs recorded for this workspace.
func (m *Model) restoreSession() {
	sess, err := m.store.Load(m.workDir)
	if errors.Is(err, session.ErrNotFound) {
		return
	}
	if err != nil {
		log.ErrorErr(log.CatSession, "session restore failed", err, "workspace", m.workDir)
		return
	}

	for _, t := range sess.Tabs {
		if err := m.openPath(t.Path); err != nil {
			log.ErrorErr(log.CatSession, "restoring tab failed", err, "path", t.Path)
		}
	}
	if sess.ActiveTab < m.tabs.Count() {
		m.tabs.SetActive(sess.ActiveTab)
	}
	log.Info(log.CatSession, "session restored", "workspace", m.workDir, "tabs", m.tabs.Count())
}

// saveSession persists the open tabs for this workspace.
func (m *Model) saveSession() {
	if m.store == nil {
		return
	}

	sess := &session.Session{
		Workspace: m.workDir,
		ActiveTab: max(m.tabs.Active(), 0),
	}
	for _, path := range m.tabs.Paths() {
		tab := session.Tab{Path: path}
		if of, ok := m.files[path]; ok {
			tab.CursorRow, tab.CursorCol = of.ed.CursorPosition()
		}
		sess.Tabs = append(sess.Tabs, tab)
	}
	if len(sess.Tabs) == 0 {
		if err := m.store.Delete(m.workDir); err != nil && !errors.Is(err, session.ErrNotFound) {
			log.ErrorErr(log.CatSession, "session delete failed", err, "workspace", m.workDir)
		}
		return
	}

	if err := m.store.Save(sess); err != nil {
		log.ErrorErr(log.CatSession, "session save failed", err, "workspace", m.workDir)
	}
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	m.cancel()

	var firstErr error
	if m.shellProc != nil && m.shellProc.Running() {
		if err := m.shellProc.Stop(); err != nil {
			firstErr = err
		}
	}
	if m.watch != nil {
		if err := m.watch.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// displayPath shortens a path to be workspace-relative when possible.
func displayPath(workDir, path string) string {
	if rel, err := filepath.Rel(workDir, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func isSteps(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".steps")
}

func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

func languageFor(path string) string {
	switch {
	case isSteps(path):
		return "Steps"
	case isMarkdown(path):
		return "Markdown"
	default:
		return "Text"
	}
}

// openErrorMessage turns a load error into a short toast message.
func openErrorMessage(err error) string {
	if errors.Is(err, textfile.ErrBinaryFile) {
		return "cannot open binary file"
	}
	return "open failed: " + err.Error()
}
