// Package main is a command line front end for the recommendation engine.
// It resolves a merchant (by address lookup or by name and types), maps it
// to reward categories, and prints the wallet's cards ranked by reward rate.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/SanmaySarada/CardGeniusMVP/internal/config"
	"github.com/SanmaySarada/CardGeniusMVP/internal/services/category"
	"github.com/SanmaySarada/CardGeniusMVP/internal/services/places"
	"github.com/SanmaySarada/CardGeniusMVP/internal/services/rewards"
)

// defaultCards is the demo wallet used when -cards is not given.
var defaultCards = []string{
	"Target REDcard",
	"Capital One Venture X Rewards Credit Card",
	"American Express® Gold Card",
	"Chase Sapphire Reserve®",
	"U.S. Bank Altitude® Go",
}

func main() {
	var (
		address    = flag.String("address", "", "street address or place query to look up")
		name       = flag.String("name", "", "merchant name (skips the address lookup)")
		types      = flag.String("types", "", "comma-separated place types, e.g. restaurant,cafe")
		cards      = flag.String("cards", "", "comma-separated card names (defaults to the demo wallet)")
		matrixPath = flag.String("matrix", "data/card_rewards_matrix.csv", "path to the rewards matrix CSV")
		topN       = flag.Int("top", 20, "number of cards to print")
	)
	flag.Parse()

	config.LoadEnv()

	if *address == "" && *name == "" {
		fmt.Fprintln(os.Stderr, "Usage: recommend -address '1600 Amphitheatre Pkwy, Mountain View, CA'")
		fmt.Fprintln(os.Stderr, "       recommend -name 'Chipotle Mexican Grill' -types restaurant,food")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	placeName := *name
	placeTypes := splitList(*types)

	if *address != "" {
		apiKey := config.GetEnv("GOOGLE_PLACES_API_KEY", "")
		if apiKey == "" {
			fmt.Fprintln(os.Stderr, "Set GOOGLE_PLACES_API_KEY first.")
			os.Exit(1)
		}
		placesService := places.NewService(places.Config{APIKey: apiKey})
		place, err := placesService.FindPlaceFromText(ctx, *address)
		if err != nil {
			log.Fatalf("place lookup failed: %v", err)
		}
		if place == nil {
			fmt.Println("No place found.")
			return
		}

		fmt.Println("Name:", place.Name)
		fmt.Println("Address:", place.FormattedAddress)
		fmt.Println("Place ID:", place.PlaceID)
		fmt.Println("Types:", strings.Join(place.Types, ", "))

		placeName = place.Name
		placeTypes = place.Types
	}

	brandCat, brandOK, defaultCat := category.MapPlaceToCategories(placeName, placeTypes)
	mapped := category.MapPlaceToCategory(placeName, placeTypes)
	fmt.Println("Mapped Category:", mapped)
	if brandOK && defaultCat != "" && defaultCat != brandCat {
		fmt.Println("Also considering category:", defaultCat)
	}

	wallet := defaultCards
	if *cards != "" {
		wallet = splitList(*cards)
	}

	engine := rewards.NewService(&rewards.FileSource{Path: *matrixPath}, nil)
	ranked, err := engine.RankCardsForPlace(ctx, placeName, placeTypes, wallet, *topN)
	if err != nil {
		log.Fatalf("ranking failed: %v", err)
	}

	if len(ranked) == 0 {
		fmt.Println("No rewards data found for this category.")
		return
	}

	fmt.Println("Top cards for category:")
	for i, rec := range ranked {
		line := fmt.Sprintf("  %d. %s: %g", i+1, rec.CardName, rec.RewardRate)
		if rec.OfferText != "" {
			line += " — " + rec.OfferText
		}
		fmt.Println(line)
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
