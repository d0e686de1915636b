package chat

import (
	"math/rand/v2"
	"strconv"
)

var (
	usernameAdjectives = []string{
		"Crypto", "Moon", "Diamond", "Rocket", "Bull",
		"Bear", "Hodl", "Lambo", "ToTheMoon", "BNB",
	}
	usernameNouns = []string{
		"Trader", "Holder", "Investor", "Whale", "Dolphin",
		"Ape", "Degen", "Legend", "Master", "Pro",
	}
)

// GenerateUsername builds a display name for clients that never picked one,
// e.g. "MoonWhale731".
func GenerateUsername() string {
	adjective := usernameAdjectives[rand.IntN(len(usernameAdjectives))]
	noun := usernameNouns[rand.IntN(len(usernameNouns))]
	return adjective + noun + strconv.Itoa(rand.IntN(9999))
}
