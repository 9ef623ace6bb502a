package main

import (
	"github.com/nikbrunner/pathmarks/internal/picker"
	"github.com/nikbrunner/pathmarks/internal/preview"
	"github.com/nikbrunner/pathmarks/internal/service"
	"github.com/nikbrunner/pathmarks/internal/storage"
	"github.com/spf13/cobra"
)

// newPicker is swapped in tests so no terminal is needed.
var newPicker = func(cmd *cobra.Command) service.Picker {
	opts := picker.DefaultOptions()
	opts.HeightPercent = cfg.PickerHeight
	return picker.Program[preview.Candidate]{
		Options: opts,
		Output:  cmd.ErrOrStderr(),
	}
}

// openService opens the store at the configured path and builds a service
// around it. The caller must call the returned close function.
func openService(cmd *cobra.Command) (*service.Service, func(), error) {
	store, err := storage.NewSQLiteStorage(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	svc := service.New(store, newPicker(cmd), service.Options{
		Editor: cfg.Editor,
		Icons:  preview.Icons(cfg.NerdFonts),
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
		Logger: logger,
	})

	closeStore := func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing store", "err", err)
		}
	}
	return svc, closeStore, nil
}

// optionalString returns a pointer to the flag's value when it was given.
func optionalString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &v
}
