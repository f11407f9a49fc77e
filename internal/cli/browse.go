package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"resource-converter/internal/domain"
	"resource-converter/internal/download"
	"resource-converter/internal/exportview"
	"resource-converter/internal/listview"
	"resource-converter/internal/logger"
	"resource-converter/internal/profile"
	"resource-converter/internal/session"
)

const historyFile = "history"

func newBrowseCommand(a *app) *cobra.Command {
	var (
		profileName string
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse, select and export resources interactively",
	}
	cmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "Profile to open instead of the active one")
	cmd.PersistentFlags().StringVarP(&outDir, "out", "o", ".", "Directory downloads are written to")

	cmd.AddCommand(&cobra.Command{
		Use:   "labels",
		Short: "Browse UI labels and export them as .properties files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := newBrowser[domain.LabelRow](a, labelKind, a.client.Labels(), cmd.OutOrStdout(), outDir)
			return a.runREPL(cmd.Context(), b, profileName)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "errors",
		Aliases: []string{"error-messages"},
		Short:   "Browse error messages and export them as .xml files",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := newBrowser[domain.ErrorMessageRow](a, errorKind, a.client.ErrorMessages(), cmd.OutOrStdout(), outDir)
			return a.runREPL(cmd.Context(), b, profileName)
		},
	})
	return cmd
}

// repl is the part of a browser the prompt loop drives.
type repl interface {
	start(ctx context.Context, profileName string)
	prompt() string
	execute(ctx context.Context, p Prompter, input string) (quit bool)
}

func (a *app) runREPL(ctx context.Context, r repl, profileName string) error {
	p := a.prompter
	if p == nil {
		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		historyPath := filepath.Join(a.cfg.ConfigDir, historyFile)
		if f, err := os.Open(historyPath); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if err := os.MkdirAll(a.cfg.ConfigDir, 0o700); err != nil {
				return
			}
			if f, err := os.Create(historyPath); err == nil {
				_, _ = line.WriteHistory(f)
				f.Close()
			}
		}()
		p = line
	}

	r.start(ctx, profileName)
	for {
		input, err := p.Prompt(r.prompt())
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		p.AppendHistory(input)

		if r.execute(ctx, p, input) {
			return nil
		}
	}
}

// browser is the list screen of one resource kind plus its export sub-view.
type browser[T resourceRow] struct {
	kind     kind[T]
	api      resourceAPI[T]
	profiles *profile.Store
	sessions session.Store
	out      io.Writer
	ascii    bool
	outDir   string
	pageSize int
	debounce time.Duration

	view   *listview.View[T]
	export *exportview.View[T]
	token  string
	slot   domain.Slot
}

func newBrowser[T resourceRow](a *app, k kind[T], api resourceAPI[T], out io.Writer, outDir string) *browser[T] {
	b := &browser[T]{
		kind:     k,
		api:      api,
		profiles: a.profiles,
		sessions: a.sessions,
		out:      out,
		ascii:    a.plain || !isTerminal(out),
		outDir:   outDir,
		pageSize: a.cfg.PageSize,
		debounce: a.cfg.Debounce,
	}
	b.view = b.newView()
	return b
}

func (b *browser[T]) newView() *listview.View[T] {
	return listview.New[T](b.api, listview.Options{
		PageSize: b.pageSize,
		Debounce: b.debounce,
	})
}

func (b *browser[T]) prompt() string {
	name := "-"
	if p, ok := b.view.Profile(); ok {
		name = p.Name
	}
	if b.export != nil {
		return fmt.Sprintf("%s/%s/export> ", name, b.kind.title)
	}
	return fmt.Sprintf("%s/%s> ", name, b.kind.title)
}

func (b *browser[T]) start(ctx context.Context, profileName string) {
	fmt.Fprintf(b.out, "Browsing %s. Type 'help' for commands.\n", b.kind.title)
	b.open(ctx, profileName)
}

// open shows profileName, or the active profile when it is empty.
func (b *browser[T]) open(ctx context.Context, profileName string) {
	if profileName == "" {
		active, err := b.profiles.Active()
		if err != nil {
			b.fail(err)
			return
		}
		profileName = active
	}
	if profileName == "" {
		fmt.Fprintln(b.out, "No active profile. Use 'profile <name>' to pick one.")
		return
	}
	b.useProfile(ctx, profileName)
}

func (b *browser[T]) useProfile(ctx context.Context, name string) {
	p, err := b.profiles.Get(name)
	if err != nil {
		b.fail(err)
		return
	}
	b.afterFetch(b.view.SetProfile(ctx, p))
}

func (b *browser[T]) execute(ctx context.Context, p Prompter, input string) bool {
	fields := strings.Fields(input)
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		b.help()
		return false
	}

	if b.export != nil {
		b.exportCommand(ctx, p, name, args)
	} else {
		b.listCommand(ctx, name, args)
	}
	return false
}

func (b *browser[T]) listCommand(ctx context.Context, name string, args []string) {
	switch name {
	case "profile":
		if len(args) == 0 {
			if p, ok := b.view.Profile(); ok {
				fmt.Fprintf(b.out, "Profile: %s (%s %s)\n", p.Name, p.DBType, p.DBName)
			} else {
				fmt.Fprintln(b.out, "No profile selected.")
			}
			return
		}
		b.useProfile(ctx, args[0])

	case "filter":
		b.filter(ctx, args)

	case "show", "ls":
		b.show()

	case "refresh":
		b.afterFetch(b.view.Refresh(ctx))

	case "page":
		n, err := intArg(args)
		if err != nil {
			b.fail(err)
			return
		}
		b.afterFetch(b.view.SetPage(ctx, n-1))

	case "next", "n":
		st := b.view.State()
		if int64(st.Page+1)*int64(st.PageSize) >= st.Total {
			fmt.Fprintln(b.out, "Already on the last page.")
			return
		}
		b.afterFetch(b.view.SetPage(ctx, st.Page+1))

	case "prev", "p":
		st := b.view.State()
		if st.Page == 0 {
			fmt.Fprintln(b.out, "Already on the first page.")
			return
		}
		b.afterFetch(b.view.SetPage(ctx, st.Page-1))

	case "size":
		n, err := intArg(args)
		if err != nil {
			b.fail(err)
			return
		}
		b.afterFetch(b.view.SetPageSize(ctx, n))

	case "toggle", "t":
		if len(args) == 0 {
			b.fail(errors.New("usage: toggle <objectID>..."))
			return
		}
		for _, id := range args {
			on, err := b.view.Toggle(id)
			if err != nil {
				b.fail(err)
				return
			}
			if on {
				fmt.Fprintf(b.out, "Selected %s.\n", id)
			} else {
				fmt.Fprintf(b.out, "Deselected %s.\n", id)
			}
		}

	case "select":
		b.selectCommand(ctx, args)

	case "clear":
		if b.check(b.view.ClearSelection()) {
			fmt.Fprintln(b.out, "Selection cleared.")
		}

	case "selected":
		ids := b.view.SelectedIDs()
		if len(ids) == 0 {
			fmt.Fprintln(b.out, "Nothing selected.")
			return
		}
		fmt.Fprintf(b.out, "%d selected: %s\n", len(ids), strings.Join(ids, ", "))

	case "msgid":
		if !b.kind.messageIDs {
			b.fail(fmt.Errorf("msgid applies to labels only"))
			return
		}
		if len(args) == 0 {
			b.fail(errors.New("usage: msgid <objectID> [key]"))
			return
		}
		key := ""
		if len(args) > 1 {
			key = strings.Join(args[1:], " ")
		}
		b.view.SetMessageID(args[0], key)
		if key == "" {
			fmt.Fprintf(b.out, "%s is exported under its objectID.\n", args[0])
		} else {
			fmt.Fprintf(b.out, "%s is exported as %s.\n", args[0], key)
		}

	case "export":
		b.enterExport(ctx)

	default:
		b.fail(fmt.Errorf("unknown command %q, type 'help'", name))
	}
}

func (b *browser[T]) filter(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(b.out, "Filter: %s\n", describeFilter(b.view.State().Filter))
		return
	}

	f := b.view.State().Filter
	if strings.EqualFold(args[0], "clear") {
		f = domain.Filter{}
	} else {
		key, ok := b.kind.filterKey(args[0])
		if !ok {
			b.fail(fmt.Errorf("unknown filter %q, use one of: %s", args[0], b.kind.filterHelp))
			return
		}
		b.kind.filters[key](&f, strings.Join(args[1:], " "))
	}

	if err := b.view.SetFilter(f); err != nil {
		b.fail(err)
		return
	}
	if err := b.view.Wait(ctx); err != nil {
		b.fail(err)
		return
	}
	b.afterFetch(nil)
}

func (b *browser[T]) selectCommand(ctx context.Context, args []string) {
	what := ""
	if len(args) > 0 {
		what = strings.ToLower(args[0])
	}

	switch what {
	case "page":
		if b.check(b.view.SelectPage()) {
			fmt.Fprintf(b.out, "%d selected.\n", b.view.State().Selected)
		}
	case "all":
		if b.check(b.view.SelectAllMatching(ctx)) {
			fmt.Fprintf(b.out, "%d selected.\n", b.view.State().Selected)
		}
	default:
		b.fail(errors.New("usage: select page|all"))
	}
}

func (b *browser[T]) enterExport(ctx context.Context) {
	ids := b.view.SelectedIDs()
	if len(ids) == 0 {
		b.fail(exportview.ErrNoSelection)
		return
	}
	p, ok := b.view.Profile()
	if !ok {
		b.fail(listview.ErrNoProfile)
		return
	}

	// The list screen stays current until both the rows and the snapshot are in hand.
	ev := b.kind.openExport(b.api, p, b.view.MessageIDs())
	if err := ev.Open(ctx, ids); err != nil {
		b.fail(err)
		return
	}
	token, err := b.sessions.Save(b.kind.name, b.view.Snapshot())
	if err != nil {
		b.fail(fmt.Errorf("cannot export without saving the list state: %w", err))
		return
	}

	b.token = token
	b.export = ev
	b.slot = domain.SlotCountry1

	fmt.Fprintf(b.out, "Exporting %d %s. Type 'back' to return to the list.\n", len(ids), b.kind.title)
	b.preview()
}

func (b *browser[T]) exportCommand(ctx context.Context, p Prompter, name string, args []string) {
	switch name {
	case "back", "b":
		b.leaveExport(ctx)

	case "slots", "languages":
		prof, _ := b.view.Profile()
		for _, s := range b.export.Slots() {
			mark := " "
			if s == b.slot {
				mark = "*"
			}
			fmt.Fprintf(b.out, "%s %s  %s\n", mark, s, download.BaseName(prof, s))
		}

	case "preview", "lang":
		if len(args) > 0 {
			slot, err := b.resolveSlot(args[0])
			if err != nil {
				b.fail(err)
				return
			}
			b.slot = slot
		}
		b.preview()

	case "download", "save":
		b.download(ctx, p, args)

	default:
		b.fail(fmt.Errorf("unknown command %q, type 'help'", name))
	}
}

func (b *browser[T]) preview() {
	text, err := b.export.Preview(b.slot)
	if err != nil {
		b.fail(err)
		return
	}
	fmt.Fprintf(b.out, "--- %s, %d rows ---\n", b.slot, len(b.export.Rows()))
	fmt.Fprintln(b.out, strings.TrimRight(text, "\n"))
	fmt.Fprintln(b.out, "---")
}

func (b *browser[T]) download(ctx context.Context, p Prompter, args []string) {
	slots := []domain.Slot{b.slot}
	if len(args) > 0 {
		if strings.EqualFold(args[0], "all") {
			slots = b.export.Slots()
		} else {
			slots = slots[:0]
			for _, part := range strings.Split(args[0], ",") {
				slot, err := b.resolveSlot(part)
				if err != nil {
					b.fail(err)
					return
				}
				slots = append(slots, slot)
			}
		}
	}

	var filename string
	if len(args) > 1 {
		filename = args[1]
	} else {
		name, err := p.PromptWithSuggestion("File name: ", b.export.SuggestedName(slots), -1)
		if err != nil {
			fmt.Fprintln(b.out, "Download cancelled.")
			return
		}
		filename = name
	}

	f, err := b.export.Download(ctx, slots, filename)
	if err != nil {
		b.fail(err)
		return
	}
	path, err := download.Save(b.outDir, f)
	if err != nil {
		b.fail(err)
		return
	}
	fmt.Fprintf(b.out, "Wrote %s (%d bytes).\n", path, len(f.Data))
}

// leaveExport rebuilds the list screen from the snapshot saved on entry.
// Without a usable snapshot it starts over from the active profile.
func (b *browser[T]) leaveExport(ctx context.Context) {
	token := b.token
	b.export = nil
	b.token = ""
	b.view = b.newView()

	snap, err := b.sessions.Consume(b.kind.name, token)
	if err != nil {
		logger.Debug("No list state to restore", slog.String("kind", b.kind.name), slog.String("error", err.Error()))
		b.open(ctx, "")
		return
	}

	p, err := b.profiles.Get(snap.ProfileName)
	if err != nil {
		b.fail(err)
		b.open(ctx, "")
		return
	}
	b.afterFetch(b.view.Restore(ctx, snap, p))
}

func (b *browser[T]) resolveSlot(s string) (domain.Slot, error) {
	s = strings.TrimSpace(s)
	p, _ := b.view.Profile()
	for _, slot := range b.export.Slots() {
		if strings.EqualFold(s, string(slot)) || strings.EqualFold(s, p.SlotLabel(slot)) {
			return slot, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnknownSlot, s)
}

func (b *browser[T]) show() {
	st := b.view.State()
	if st.Profile == "" {
		fmt.Fprintln(b.out, "No profile selected.")
		return
	}

	p, _ := b.view.Profile()
	slots := p.AvailableSlots()
	headers := append([]string{""}, b.kind.headers...)
	for _, s := range slots {
		headers = append(headers, download.BaseName(p, s))
	}

	messageIDs := b.view.MessageIDs()
	rows := make([][]string, 0, len(st.Content))
	for _, r := range st.Content {
		row := append([]string{checkbox(b.view.IsSelected(r.ID()))}, b.kind.cells(r, messageIDs[r.ID()])...)
		for _, s := range slots {
			row = append(row, cell(r.Text(s)))
		}
		rows = append(rows, row)
	}

	if err := renderTable(b.out, b.ascii, headers, rows); err != nil {
		b.fail(err)
	}

	pages := int64(1)
	if st.Total > 0 {
		pages = (st.Total + int64(st.PageSize) - 1) / int64(st.PageSize)
	}
	fmt.Fprintf(b.out, "Page %d of %d, %d per page, %d matching, %d selected. Filter: %s\n",
		st.Page+1, pages, st.PageSize, st.Total, st.Selected, describeFilter(st.Filter))
	if st.Err != nil {
		fmt.Fprintf(b.out, "Error: %v\n", st.Err)
	}
}

func (b *browser[T]) help() {
	if b.export != nil {
		fmt.Fprint(b.out, `Export commands:
  preview [lang]            show the export in a language (slot key or label)
  slots                     list the languages of this profile
  download [lang,..|all] [file]
                            write the file; several languages give a zip
  back                      return to the list
  quit                      leave resconv
`)
		return
	}

	fmt.Fprintf(b.out, `List commands:
  profile [name]            show or switch the profile
  filter <field> <text>     partial match on %s
  filter clear              remove all filters
  page <n> | next | prev    move between pages
  size <n>                  rows per page
  toggle <id>...            select or deselect rows
  select page | select all  add this page, or replace with every match
  clear                     empty the selection
  selected                  list selected IDs
`, b.kind.filterHelp)
	if b.kind.messageIDs {
		fmt.Fprintln(b.out, "  msgid <id> [key]          export a label under another key")
	}
	fmt.Fprint(b.out, `  show | refresh            redraw or reload the page
  export                    preview and download the selection
  quit                      leave resconv
`)
}

// afterFetch redraws the page. Fetch failures are shown as part of the page;
// errors that never reached the backend are printed on their own.
func (b *browser[T]) afterFetch(err error) {
	if errors.Is(err, listview.ErrNoProfile) || errors.Is(err, listview.ErrInvalidPaging) || errors.Is(err, listview.ErrBusy) {
		b.fail(err)
		return
	}
	b.show()
}

// check prints err and reports whether it was nil.
func (b *browser[T]) check(err error) bool {
	if err != nil {
		b.fail(err)
		return false
	}
	return true
}

func (b *browser[T]) fail(err error) {
	fmt.Fprintf(b.out, "Error: %v\n", err)
}

func intArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("a number is required")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", args[0])
	}
	return n, nil
}
