package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quill/internal/driver"
)

// RunProgress renders progress for files on out until events is closed.
func RunProgress(title string, files []string, events <-chan driver.Event, out io.Writer) error {
	p := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
