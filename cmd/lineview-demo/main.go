package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lineview"
	"github.com/iw2rmb/lineview/reveal"
	"github.com/iw2rmb/lineview/view"
	"github.com/iw2rmb/lineview/viewconfig"
)

const sampleText = "Hello from lineview.\n\nArrows move the cursor.\nctrl+l centers it, ctrl+t moves it near the top.\nThe mouse wheel scrolls, click and drag to select.\nctrl+k deletes a line.\nctrl+c quits."

type model struct {
	view view.Model
}

func (m model) Init() tea.Cmd { return m.view.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		m.view.Close()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.view.View() }

func main() {
	var (
		smooth      = flag.Bool("smooth", true, "animate reveals")
		lineNums    = flag.Bool("line-numbers", true, "show line numbers")
		readOnly    = flag.Bool("read-only", false, "disable editing")
		tabWidth    = flag.Int("tab-width", 4, "tab width in cells")
		surrounding = flag.Int("surrounding-lines", 3, "lines kept around the cursor")
		revealAll   = flag.Bool("surrounding-all", false, "keep surrounding lines for mouse reveals too")
		leftPad     = flag.Float64("reveal-left-padding", 4, "cells kept left of a horizontally revealed cursor")
		border      = flag.Bool("border", false, "draw a rounded border around the view")
		logPath     = flag.String("log", "", "write debug logs to this file")
		version     = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(lineview.Version())
		return
	}

	text := sampleText
	if path := flag.Arg(0); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			fail(err)
		}
		text = string(data)
	}

	opts := viewconfig.Default()
	opts.TabWidth = *tabWidth
	opts.SurroundingLines = *surrounding
	opts.RevealHorizontalLeftPadding = *leftPad
	if *revealAll {
		opts.SurroundingLinesStyle = reveal.SurroundingAll
	}
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		opts.Logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	style := view.DefaultStyle()
	if *border {
		style.Frame = style.Frame.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	}

	v, err := view.New(view.Config{
		Text:            text,
		Options:         opts,
		SmoothScrolling: *smooth,
		ReadOnly:        *readOnly,
		ShowLineNums:    *lineNums,
		Style:           style,
	})
	if err != nil {
		fail(err)
	}

	p := tea.NewProgram(model{view: v}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
