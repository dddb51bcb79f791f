package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"estate-ledger/internal/config"
	"estate-ledger/internal/event"
	"estate-ledger/internal/model"
)

// DemoItemName and DemoItemPrice describe the record the demo creates.
const (
	DemoItemName  = "item-1"
	DemoItemPrice = int64(3000)
)

// Demo creates one item, soft-deletes the whole active view and writes the
// deleted view to out as JSON.
func Demo(ctx context.Context, cfg *config.Config, out io.Writer) error {
	db, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return RunDemo(ctx, NewServices(db, event.NewBus(), pagination(cfg)), out)
}

func RunDemo(ctx context.Context, services Services, out io.Writer) error {
	name := DemoItemName
	price := DemoItemPrice

	created, err := services.Items.Create(ctx, model.CreateItemRequest{Name: &name, Price: &price})
	if err != nil {
		return fmt.Errorf("create demo item: %w", err)
	}

	result, err := services.Items.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("delete active items: %w", err)
	}

	deleted, meta, err := services.Items.List(ctx, model.ViewDeleted, model.ItemQuery{Page: 1})
	if err != nil {
		return fmt.Errorf("list deleted items: %w", err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]any{
		"created":  created,
		"affected": result.Affected,
		"deleted":  deleted.Items,
		"total":    meta.Total,
	})
}
