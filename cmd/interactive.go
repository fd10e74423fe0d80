package cmd

import (
	"fmt"
	"os"

	"todone/internal"
)

func InteractiveCommand(pathArg string) error {
	config, configErr := internal.LoadConfig()

	logger, closeLog, logErr := internal.NewLogger(config.Log)
	if logErr != nil {
		logger, closeLog, _ = internal.NewLogger(internal.LogConfig{})
	}
	defer closeLog()

	if configErr != nil {
		logger.Warn("using default config", "err", configErr)
	}
	if logErr != nil {
		logger.Warn("logging disabled", "err", logErr)
	}

	path, err := internal.ResolveFilePath(pathArg)
	if err != nil {
		return err
	}

	lock, err := internal.LockDocument(path)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	doc, err := internal.LoadDocument(path)
	if err != nil {
		return fmt.Errorf("couldn't read from %s: %w", path, err)
	}
	logger.Info("loaded document", "path", path, "todos", len(doc.Todos), "dones", len(doc.Dones), "existed", doc.Existed)

	updated, quit, err := internal.ShowInteractiveTodoList(doc, config, logger)
	if err != nil {
		return fmt.Errorf("failed to run interactive list: %w", err)
	}

	return finishSession(os.Stdout, path, updated, quit, logger)
}
