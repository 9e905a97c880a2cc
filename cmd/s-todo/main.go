package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/secheng722/s-todo/internal/config"
	"github.com/secheng722/s-todo/internal/models"
	"github.com/secheng722/s-todo/internal/store"
	"github.com/secheng722/s-todo/internal/tui"
	"github.com/secheng722/s-todo/internal/util"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "s-todo must be run in a terminal")
		os.Exit(1)
	}

	// Logging goes to a file only when debugging; the alternate screen
	// makes stderr output invisible anyway.
	if os.Getenv("S_TODO_DEBUG") != "" {
		f, err := tea.LogToFile("s_todo_debug.log", "debug")
		if err == nil {
			defer f.Close()
		}
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := loadConfig()
	tui.SetTheme(cfg.Theme)

	dataPath := cfg.DataPath
	if dataPath == "" {
		dataPath = store.DefaultPath()
	}
	st := store.NewFileStore(dataPath)

	data, err := st.Load()
	if err != nil {
		data = models.DefaultData()
	}

	p := tea.NewProgram(tui.NewModel(data, st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() config.Config {
	dir, ok := util.ConfigDir(config.AppName)
	if !ok {
		return config.Default()
	}
	cfg, err := config.LoadOrCreate(filepath.Join(dir, config.ConfigFileName))
	if err != nil {
		util.LogError("load config", err)
		return config.Default()
	}
	return cfg
}
