package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/rpginventory/internal/data"
	"github.com/udisondev/rpginventory/internal/db"
	"github.com/udisondev/rpginventory/internal/model"
)

type command struct {
	desc         string
	usage        string
	needsCatalog bool
	needsDB      bool
	run          func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"list":     {desc: "List item ids", usage: "list", needsCatalog: true, run: runList},
	"show":     {desc: "Show an item definition", usage: "show <id>", needsCatalog: true, run: runShow},
	"lore":     {desc: "Render item lore", usage: "lore <id>", needsCatalog: true, run: runLore},
	"modifier": {desc: "Aggregate a stat for an actor", usage: "modifier <actor.yml> <STAT>", needsCatalog: true, run: runModifier},
	"import":   {desc: "Import a YAML catalog into PostgreSQL", usage: "import <items.yml>", needsDB: true, run: runImport},
	"watch":    {desc: "Keep the catalog loaded, reload on SIGHUP", usage: "watch", needsCatalog: true, run: runWatch},
}

func printUsage() {
	fmt.Println("Usage: itemctl <command> [args]")
	fmt.Println()
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-32s %s\n", commands[name].usage, commands[name].desc)
	}
}

func runList(_ context.Context, a *app, _ []string) error {
	for _, id := range a.registry.Current().List() {
		fmt.Println(id)
	}
	return nil
}

func runShow(_ context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: show <id>")
	}
	item := a.registry.Current().Get(args[0])
	if item == nil {
		return fmt.Errorf("%w: %s", data.ErrUnknownItem, args[0])
	}

	fmt.Printf("id:          %s\n", item.ID())
	fmt.Printf("name:        %s\n", item.Name())
	fmt.Printf("texture:     %s\n", item.Texture())
	if item.Level() != model.NoLevel {
		fmt.Printf("level:       %d\n", item.Level())
	}
	if len(item.Classes()) > 0 {
		fmt.Printf("classes:     %s\n", model.ClassesString(item))
	}
	fmt.Printf("unbreakable: %t\n", item.IsUnbreakable())
	fmt.Printf("drop:        %t\n", item.IsDrop())
	fmt.Printf("hide-stats:  %t\n", item.IsStatsHidden())
	for _, s := range item.Stats() {
		fmt.Printf("stat:        %s %s\n", s.Type, s.DisplayValue())
	}
	return nil
}

func runLore(_ context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: lore <id>")
	}
	if a.registry.Current().Get(args[0]) == nil {
		return fmt.Errorf("%w: %s", data.ErrUnknownItem, args[0])
	}
	stack := a.renderer.Stack(args[0])
	fmt.Println(stack.Name)
	for _, line := range stack.Lore {
		fmt.Println(line)
	}
	return nil
}

// actorFile - описание игрока для команды modifier.
type actorFile struct {
	Level    int32    `yaml:"level"`
	Class    string   `yaml:"class"`
	Passive  []string `yaml:"passive"`
	Armor    []string `yaml:"armor"`
	MainHand string   `yaml:"main_hand"`
	OffHand  string   `yaml:"off_hand"`
	Notify   bool     `yaml:"notify"`
}

func runModifier(_ context.Context, a *app, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: modifier <actor.yml> <STAT>")
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading actor %s: %w", args[0], err)
	}
	var af actorFile
	if err := yaml.Unmarshal(raw, &af); err != nil {
		return fmt.Errorf("parsing actor %s: %w", args[0], err)
	}

	cat := a.registry.Current()
	stacks := func(ids []string) []model.ItemStack {
		out := make([]model.ItemStack, 0, len(ids))
		for _, id := range ids {
			out = append(out, cat.Stack(id))
		}
		return out
	}
	hand := func(id string) model.ItemStack {
		if id == "" {
			return nil
		}
		return cat.Stack(id)
	}

	actor := model.NewActorSnapshot(af.Level, af.Class).
		WithPassive(stacks(af.Passive)...).
		WithArmor(stacks(af.Armor)...).
		WithHands(hand(af.MainHand), hand(af.OffHand))

	stat := model.StatType(strings.ToUpper(args[1]))
	m := a.aggregator.ModifierNotify(actor, stat, af.Notify)

	for _, msg := range actor.Messages() {
		fmt.Printf("message:        %s\n", msg)
	}
	fmt.Printf("min bonus:      %g\n", m.MinBonus)
	fmt.Printf("max bonus:      %g\n", m.MaxBonus)
	fmt.Printf("min multiplier: %g\n", m.MinMultiplier)
	fmt.Printf("max multiplier: %g\n", m.MaxMultiplier)
	return nil
}

func runImport(ctx context.Context, a *app, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: import <items.yml>")
	}
	doc, err := data.FileSource{Path: args[0]}.Load(ctx)
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}
	// Проверяем документ до записи в БД.
	if _, err := data.Parse(doc); err != nil {
		return fmt.Errorf("validating catalog: %w", err)
	}
	return db.NewItemRepository(a.database.Pool()).Import(ctx, doc)
}

func runWatch(ctx context.Context, a *app, _ []string) error {
	g, ctx := errgroup.WithContext(ctx)

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-hup:
				a.reload(ctx, "signal")
			}
		}
	})

	if a.cfg.ReloadInterval > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(a.cfg.ReloadInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					a.reload(ctx, "interval")
				}
			}
		})
	}

	return g.Wait()
}

// reload keeps the previous snapshot on failure; Registry logs the cause.
func (a *app) reload(ctx context.Context, trigger string) {
	if _, err := a.registry.Reload(ctx, a.source); err != nil {
		slog.Warn("catalog reload failed, keeping previous snapshot",
			"trigger", trigger,
			"items", a.registry.Current().Len())
	}
}
