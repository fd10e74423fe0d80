package cmd

import (
	"fmt"
	"io"

	"todone/internal"

	"github.com/charmbracelet/log"
)

// finishSession writes the document back when the session ended with a
// saving quit. Any other ending leaves the file untouched.
func finishSession(out io.Writer, path string, doc *internal.Document, quit internal.QuitKind, logger *log.Logger) error {
	if quit != internal.QuitSave {
		logger.Info("changes discarded", "quit", quit)
		return nil
	}

	written, err := internal.SaveDocument(path, doc)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	if !written {
		logger.Info("nothing to save", "path", path)
		return nil
	}

	logger.Info("saved document", "path", path, "todos", len(doc.Todos), "dones", len(doc.Dones))
	fmt.Fprintf(out, "Saved state to %s\n", path)
	return nil
}
