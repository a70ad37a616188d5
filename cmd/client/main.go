// Command client is a small command-line front end for the recipe-share API,
// intended for smoke-testing a running server.
//
// Usage:
//
//	client [-a address] [-t token] <command> [flags]
//
// Commands:
//
//	register  -username -email -password [-name] [-bio]
//	login     -email -password
//	search    [-search] [-category] [-cuisine]
//	get       -id
//	favorites [-add id | -remove id]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-recipe-share/internal/client"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("recipe-share-client")

	address := flag.String("a", "http://localhost:3000", "server address")
	token := flag.String("t", "", "bearer token for authenticated commands")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	api, err := client.NewAPIClient(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}
	if *token != "" {
		api.SetToken(*token)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	command, args := flag.Arg(0), flag.Args()[1:]

	result, err := runCommand(ctx, api, command, args)
	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}

	printJSON(result)

	// registration and login mint a fresh token; show it for reuse with -t
	if command == "register" || command == "login" {
		fmt.Fprintf(os.Stderr, "token: %s\n", api.Token())
	}
}

func runCommand(ctx context.Context, api *client.APIClient, command string, args []string) (any, error) {
	switch command {
	case "register":
		return runRegister(ctx, api, args)
	case "login":
		return runLogin(ctx, api, args)
	case "search":
		return runSearch(ctx, api, args)
	case "get":
		return runGet(ctx, api, args)
	case "favorites":
		return runFavorites(ctx, api, args)
	default:
		return nil, fmt.Errorf("unknown command %q", command)
	}
}

func runRegister(ctx context.Context, api *client.APIClient, args []string) (any, error) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "unique username")
	email := fs.String("email", "", "unique email")
	password := fs.String("password", "", "password")
	name := fs.String("name", "", "display name")
	bio := fs.String("bio", "", "short bio")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return api.Register(ctx, models.Registration{
		Username: *username,
		Email:    *email,
		Password: *password,
		Name:     *name,
		Bio:      *bio,
	})
}

func runLogin(ctx context.Context, api *client.APIClient, args []string) (any, error) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return api.Login(ctx, models.Credentials{Email: *email, Password: *password})
}

func runSearch(ctx context.Context, api *client.APIClient, args []string) (any, error) {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	search := fs.String("search", "", "free-text term")
	category := fs.String("category", "", "category filter")
	cuisine := fs.String("cuisine", "", "cuisine filter")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return api.SearchRecipes(ctx, models.RecipeFilter{
		Search:   *search,
		Category: *category,
		Cuisine:  *cuisine,
	})
}

func runGet(ctx context.Context, api *client.APIClient, args []string) (any, error) {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	id := fs.Int64("id", 0, "recipe id")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return api.GetRecipe(ctx, *id)
}

func runFavorites(ctx context.Context, api *client.APIClient, args []string) (any, error) {
	fs := flag.NewFlagSet("favorites", flag.ExitOnError)
	add := fs.Int64("add", 0, "recipe id to add to favorites")
	remove := fs.Int64("remove", 0, "recipe id to remove from favorites")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch {
	case *add != 0:
		return api.AddFavorite(ctx, *add)
	case *remove != 0:
		return api.RemoveFavorite(ctx, *remove)
	default:
		return api.ListFavorites(ctx)
	}
}

func printJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(v)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
