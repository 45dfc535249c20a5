package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jigargosar/ingrid/pkg/config"
	"github.com/jigargosar/ingrid/pkg/export"
	"github.com/jigargosar/ingrid/pkg/model"
	"github.com/jigargosar/ingrid/pkg/namegen"
	"github.com/jigargosar/ingrid/pkg/outline"
	"github.com/jigargosar/ingrid/pkg/store"
	"github.com/jigargosar/ingrid/pkg/ui"
	"github.com/jigargosar/ingrid/pkg/version"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	exportFile := flag.String("export-md", "", "Export the outline to a Markdown file and exit")
	stateDir := flag.String("state-dir", "", "State directory (default: nearest .ingrid/ walking up from cwd)")
	reset := flag.Bool("reset", false, "Replace the stored outline with a fresh empty one")
	noWatch := flag.Bool("no-watch", false, "Disable live reload of externally modified snapshots")
	flag.Parse()

	if *help {
		fmt.Println("Usage: ingrid [options]")
		fmt.Println("\nA keyboard-driven terminal outline editor.")
		fmt.Println("The outline is saved to .ingrid/outline.db after every command.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("ingrid %s\n", version.Version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	dir := config.DiscoverStateDir(firstNonEmpty(*stateDir, cfg.StateDir))
	st, err := store.Open(filepath.Join(dir, store.DefaultFileName))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if *reset {
		if err := st.Save(model.NewDocument()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Outline reset.")
		os.Exit(0)
	}

	doc, err := st.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *exportFile != "" {
		if err := export.WriteMarkdown(doc, cfg.ExportTitle, *exportFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported outline to %s\n", *exportFile)
		os.Exit(0)
	}

	// The TUI takes over the terminal; refuse to start when stdout is a
	// pipe so scripted invocations fail loudly instead of hanging.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: ingrid requires an interactive terminal (use --export-md for scripts)")
		os.Exit(1)
	}

	gen := namegen.New()
	ctrl := outline.NewController(doc, gen)
	theme := ui.ThemeByName(cfg.Theme, lipgloss.DefaultRenderer())
	m := ui.NewModel(ctrl, st, gen, theme)

	if !*noWatch {
		w, err := ui.NewWatcher(st.Path())
		if err != nil {
			log.Printf("warning: live reload disabled: %v", err)
		} else if err := w.Start(); err != nil {
			log.Printf("warning: live reload disabled: %v", err)
		} else {
			defer w.Stop()
			m.SetWatcher(w)
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if fm, ok := final.(ui.Model); ok && fm.Err() != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", fm.Err())
		os.Exit(1)
	}
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
