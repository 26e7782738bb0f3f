package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-session-tracker/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-session-tracker/internal/config"
	"github.com/KirkDiggler/dnd-session-tracker/internal/dice"
	dnderr "github.com/KirkDiggler/dnd-session-tracker/internal/errors"
	"github.com/KirkDiggler/dnd-session-tracker/internal/repositories/campaigns"
	"github.com/KirkDiggler/dnd-session-tracker/internal/services/encounter"
	"github.com/KirkDiggler/dnd-session-tracker/internal/services/session"
	"github.com/KirkDiggler/dnd-session-tracker/internal/spellbook"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Create D&D 5e API client
	dndClient, err := dnd5e.New(&dnd5e.Config{
		BaseURL: cfg.DND5E.BaseURL,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.DND5E.TimeoutSeconds) * time.Second,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create D&D 5e client: %v", err)
	}

	// Build the spellbook, preloading the local library when one exists
	library := spellbook.New(&spellbook.Config{Client: dndClient})

	libraryPath := cfg.SpellLibraryPath
	if libraryPath == "" {
		libraryPath = "spells.json"
	}
	if _, statErr := os.Stat(libraryPath); statErr == nil {
		count, loadErr := library.LoadFile(libraryPath)
		if loadErr != nil {
			log.Printf("Failed to load spell library %s: %v", libraryPath, loadErr)
		} else {
			log.Printf("Loaded %d spells from %s", count, libraryPath)
		}
	}

	if err := library.SyncIndexes(context.Background()); err != nil {
		log.Printf("Reference API unavailable, running from the local library: %v", err)
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client
	var store campaigns.Repository

	// Try to connect to Redis if URL is provided
	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to file storage")
		} else {
			redisClient = redis.NewClient(opts)

			// Test connection
			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(pingCtx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to file storage")
				redisClient = nil
			} else {
				log.Println("Using Redis for campaign snapshots")
				store = campaigns.NewRedisRepository(&campaigns.RedisRepoConfig{Client: redisClient})
			}
		}
	}
	if store == nil {
		log.Printf("Storing campaign snapshots under %s", cfg.Campaign.DataDir)
		store = campaigns.NewFileRepository(&campaigns.FileRepoConfig{Dir: cfg.Campaign.DataDir})
	}

	// Wire the services
	sessions := session.NewService(&session.ServiceConfig{
		Repository: store,
		Spellbook:  library,
	})
	encounters := encounter.NewService(&encounter.ServiceConfig{
		Sessions: sessions,
	})

	// Open the configured campaign, starting fresh when it does not exist
	ctx := context.Background()
	if err := sessions.LoadCampaign(ctx, cfg.Campaign.Name); err != nil {
		if !dnderr.IsNotFound(err) {
			log.Printf("Failed to load campaign: %v", err)
		}
		sessions.NewCampaign(cfg.Campaign.Name)
	}

	fmt.Println("Session tracker ready. Type 'help' for commands, 'quit' to exit.")

	done := make(chan struct{})
	go runREPL(sessions, encounters, done)

	// Wait for interrupt signal or the REPL quitting
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case <-sc:
		fmt.Println("\nShutting down...")
	case <-done:
	}

	// Save the campaign on the way out
	saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := sessions.SaveCampaign(saveCtx); err != nil {
		log.Printf("Failed to save campaign: %v", err)
	}
	cancel()

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}
}

// runREPL reads commands from stdin until EOF or quit
func runREPL(sessions session.Service, encounters encounter.Service, done chan<- struct{}) {
	defer close(done)

	ctx := context.Background()
	roller := dice.NewRandomRoller()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Print("> ")
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return

		case "help":
			fmt.Println("commands: roll <expr>, save, load <name>, campaigns, characters, party, encounters, next [id], prev [id], quit")

		case "roll":
			if len(fields) < 2 {
				fmt.Println("usage: roll <expr>")
				break
			}
			result, err := dice.RollExpression(roller, strings.Join(fields[1:], ""))
			if err != nil {
				fmt.Println("error:", err)
				break
			}
			fmt.Printf("%d (%s)\n", result.Total, result.Detail)

		case "save":
			if err := sessions.SaveCampaign(ctx); err != nil {
				fmt.Println("error:", err)
				break
			}
			fmt.Println("saved")

		case "load":
			if len(fields) < 2 {
				fmt.Println("usage: load <name>")
				break
			}
			if err := sessions.LoadCampaign(ctx, strings.Join(fields[1:], " ")); err != nil {
				fmt.Println("error:", err)
				break
			}
			fmt.Printf("loaded '%s'\n", sessions.Campaign().Name)

		case "campaigns":
			names, err := sessions.ListCampaigns(ctx)
			if err != nil {
				fmt.Println("error:", err)
				break
			}
			for _, name := range names {
				fmt.Println(name)
			}

		case "characters":
			for _, char := range sessions.ListCharacters(ctx) {
				fmt.Printf("%-36s  %-20s  HP %d/%d\n", char.ID, char.Name, char.CurrentHP, char.MaxHP)
			}

		case "party":
			campaign := sessions.Campaign()
			for _, id := range campaign.Party {
				if char := campaign.Character(id); char != nil {
					fmt.Printf("%-36s  %s\n", id, char.Name)
				}
			}

		case "encounters":
			for id, enc := range sessions.Campaign().Encounters {
				fmt.Printf("%-36s  %-20s  round %d, %d combatants\n", id, enc.Name, enc.Round, len(enc.Combatants))
			}

		case "next":
			encounterID, err := pickEncounter(sessions, fields[1:])
			if err != nil {
				fmt.Println("error:", err)
				break
			}
			combatant, err := encounters.NextTurn(ctx, encounterID)
			if err != nil {
				fmt.Println("error:", err)
				break
			}
			fmt.Printf("%s's turn\n", combatant.Character.Name)

		case "prev":
			encounterID, err := pickEncounter(sessions, fields[1:])
			if err != nil {
				fmt.Println("error:", err)
				break
			}
			combatant, err := encounters.PreviousTurn(ctx, encounterID)
			if err != nil {
				fmt.Println("error:", err)
				break
			}
			fmt.Printf("%s's turn\n", combatant.Character.Name)

		default:
			fmt.Printf("unknown command '%s', try 'help'\n", fields[0])
		}

		fmt.Print("> ")
	}
}

// pickEncounter resolves which encounter a turn command means: an explicit
// id argument, or the campaign's only encounter
func pickEncounter(sessions session.Service, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	encounters := sessions.Campaign().Encounters
	if len(encounters) == 1 {
		for id := range encounters {
			return id, nil
		}
	}

	return "", fmt.Errorf("specify an encounter id (campaign has %d encounters)", len(encounters))
}
