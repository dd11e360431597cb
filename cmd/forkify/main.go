package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/krywa5/forkify/internal/api"
	"github.com/krywa5/forkify/internal/app"
	"github.com/krywa5/forkify/internal/config"
	"github.com/krywa5/forkify/internal/domain"
	"github.com/krywa5/forkify/internal/favorites"
	"github.com/krywa5/forkify/internal/logging"
	"github.com/krywa5/forkify/internal/redis"
	"github.com/krywa5/forkify/internal/storage"
	"github.com/krywa5/forkify/internal/version"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// setupStorage picks the durable store: Redis when configured, the local
// JSON file otherwise.
func setupStorage(ctx context.Context, cfg *config.Config) domain.KeyValueStore {
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		return redis.NewKVStore(client)
	}

	store, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		slog.Error("Failed to open storage file", "path", cfg.StoragePath, "error", err)
		os.Exit(1)
	}
	return store
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Forkify starting", "env", cfg.AppEnv, "version", version.Get().Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv := setupStorage(ctx, cfg)
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	likes := favorites.NewStore(kv, clock)

	view := newConsoleView(os.Stdout)
	svc := app.NewService(client, client, likes, view, clock, cfg.PageSize)

	if err := svc.Start(ctx); err != nil {
		slog.Error("Failed to restore favorites", "error", err)
	}

	runLoop(ctx, svc, view)
	slog.Info("Forkify stopped")
}

// runLoop reads user commands from stdin and feeds them to the dispatch table
// until EOF, "quit", or a shutdown signal.
func runLoop(ctx context.Context, svc *app.Service, view *consoleView) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	fmt.Println(`Type "help" for commands.`)
	for {
		fmt.Print("> ")
		select {
		case <-ctx.Done():
			fmt.Println()
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if quit := handleLine(ctx, svc, view, line); quit {
				return
			}
		}
	}
}

func handleLine(ctx context.Context, svc *app.Service, view *consoleView, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		printHelp()
	case "search":
		err = svc.Dispatch(ctx, app.ActionSearch, args...)
	case "open":
		err = svc.Dispatch(ctx, app.ActionOpenRecipe, args...)
	case "page":
		err = svc.Dispatch(ctx, app.ActionPage, args...)
	case "servings":
		err = dispatchServings(ctx, svc, args)
	case "like":
		err = svc.Dispatch(ctx, app.ActionToggleLike)
	case "likes":
		for _, fav := range svc.Favorites() {
			view.ShowFavorite(fav, len(svc.Favorites()))
		}
	case "cart":
		err = dispatchCart(ctx, svc, view, args)
	default:
		fmt.Printf("Unknown command %q, try \"help\".\n", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	return false
}

func dispatchServings(ctx context.Context, svc *app.Service, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: servings +|-")
	}
	switch args[0] {
	case "+":
		return svc.Dispatch(ctx, app.ActionServingsIncrease)
	case "-":
		return svc.Dispatch(ctx, app.ActionServingsDecrease)
	default:
		return fmt.Errorf("usage: servings +|-")
	}
}

func dispatchCart(ctx context.Context, svc *app.Service, view *consoleView, args []string) error {
	if len(args) == 0 {
		for _, item := range svc.ShoppingItems() {
			view.ShowShoppingItem(item)
		}
		return nil
	}
	switch args[0] {
	case "add":
		return svc.Dispatch(ctx, app.ActionListAdd)
	case "rm":
		return svc.Dispatch(ctx, app.ActionListRemove, args[1:]...)
	case "set":
		return svc.Dispatch(ctx, app.ActionListUpdate, args[1:]...)
	default:
		return fmt.Errorf("usage: cart [add|rm <id>|set <id> <qty>]")
	}
}

func printHelp() {
	fmt.Print(`Commands:
  search <query>        search recipes
  page <n>              show result page n
  open <id>             open a recipe
  servings +|-          adjust servings
  cart                  show the shopping list
  cart add              add the open recipe's ingredients to the list
  cart rm <id>          remove a list item
  cart set <id> <qty>   change a list item's quantity
  like                  toggle like on the open recipe
  likes                 show liked recipes
  quit                  exit
`)
}
