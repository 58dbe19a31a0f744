package profile

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Word lists for generating kid-friendly profile names.
var adjectives = []string{
	"Happy", "Sunny", "Brave", "Bright", "Swift", "Clever", "Jolly",
	"Mighty", "Lucky", "Magic", "Cheerful", "Daring", "Gentle", "Merry",
	"Noble", "Quick", "Zippy", "Bold", "Cosmic", "Epic",
}

var animals = []string{
	"Dragon", "Tiger", "Eagle", "Dolphin", "Panda", "Lion", "Wolf",
	"Bear", "Fox", "Hawk", "Phoenix", "Unicorn", "Owl", "Otter",
	"Koala", "Penguin", "Rabbit", "Squirrel", "Hedgehog", "Falcon",
}

// Avatars learners can pick from.
var avatars = []string{"🦊", "🐼", "🦉", "🐯", "🐸", "🦄", "🐧", "🐨"}

// GenerateName returns a random "Adjective Animal" profile name.
func GenerateName() string {
	return randomElement(adjectives) + " " + randomElement(animals)
}

// RandomAvatar returns a random avatar emoji.
func RandomAvatar() string {
	return randomElement(avatars)
}

func randomElement(list []string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return list[0]
	}
	return list[n.Int64()]
}

// NormalizeName trims a learner-entered name and collapses inner runs of
// whitespace to single spaces.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
