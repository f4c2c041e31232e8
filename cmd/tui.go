package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/reroreo1/portfolio/internal/logger"
	"github.com/reroreo1/portfolio/internal/theme"
	"github.com/reroreo1/portfolio/internal/tui"
)

var themeFlag string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the portfolio in the terminal",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&themeFlag, "theme", string(theme.Default), "Color theme: light or dark")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	mode, err := theme.Parse(themeFlag)
	if err != nil {
		return err
	}

	// The terminal belongs to the program; logs go to a file in debug mode
	// and nowhere otherwise.
	if debugMode {
		f, err := tea.LogToFile("portfolio-debug.log", "portfolio")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logger.Init(f)
	} else {
		logger.Init(io.Discard)
	}

	p := tea.NewProgram(tui.New(mode), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}
