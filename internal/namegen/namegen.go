// Package namegen produces two-word display names for anonymous users.
// Names are intentionally collision-tolerant; only user ids are unique.
package namegen

import "math/rand"

var adjectives = []string{
	"Famous", "Cognitive", "Unpleasant", "Statistical", "Registered",
	"Raw", "Prickly", "Objective", "Yeasty", "Heavy", "Shiny",
	"Embarrassed", "Forward", "Responsible", "Overwhelming", "Uptight",
}

var animals = []string{
	"Mole", "Bird", "Fox", "Lobster", "Angelfish", "Haddock",
	"Ferret", "Mouse", "Beetle", "Manatee", "Frog", "Chimpanzee",
	"Louse", "Rabbit", "Rattlesnake", "Gull",
}

// Random returns a display name of the form "Adjective Animal".
func Random() string {
	return adjectives[rand.Intn(len(adjectives))] + " " + animals[rand.Intn(len(animals))]
}
