package main

import (
	"context"
	"fmt"

	"github.com/CxsLucyfer/stylebot"
	"go.uber.org/zap"
)

// openRegistry builds a Registry from the resolved configuration:
// file-backed store, optional blocklist, CLI logger.
func openRegistry(ctx context.Context, log *zap.Logger) (*stylebot.Registry, error) {
	store := stylebot.NewFileStore(storePath())

	opts := []stylebot.Option{stylebot.WithLogger(log)}
	if path := blocklistPath(); path != "" {
		bl, err := stylebot.LoadBlocklistFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, stylebot.WithBlocklist(bl))
	}

	reg, err := stylebot.NewRegistry(ctx, store, opts...)
	if err != nil {
		return nil, fmt.Errorf("open styles at %s: %w", store.Path(), err)
	}
	return reg, nil
}
