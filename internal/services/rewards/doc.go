/*
Package rewards implements the reward recommendation engine.

The engine answers one question: given a merchant and the user's stored
cards, which card pays the most cashback there? It combines three parts:

  - the category mapper (package category), which turns a merchant name and
    its place-type tags into reward categories;
  - the rewards matrix, a static card x category -> rate table parsed once
    from a CSV dataset and cached for the life of the process;
  - the scorer, which expands the merchant's categories into search terms
    (including matrix columns fuzzily related by substring), takes each
    card's maximum rate across those terms, and picks the highest-paying
    card with wallet order breaking ties.

Usage:

	svc := rewards.NewService(rewards.FileSource{Path: "data/card_rewards_matrix.csv"}, nil)

	rec, err := svc.BestCardForPlace(ctx, "Chipotle Mexican Grill",
		[]string{"restaurant"}, []string{"Chase Freedom Unlimited"})

A nil recommendation with a nil error means no card scored above zero; the
caller should fall back to the user's default card, not report an error.

The dataset load is lazy and guarded by singleflight: concurrent requests
before the first successful load share one fetch, and a failed load is
retried on the next request rather than cached.
*/
package rewards
