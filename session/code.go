package session

import (
	"strings"

	"github.com/lixenwraith/pixel-survivor/constants"
	"github.com/lixenwraith/pixel-survivor/vmath"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NormalizeCode uppercases a room code; anything but a full-length code is replaced with a random one
func NormalizeCode(code string, rng *vmath.FastRand) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) == constants.InviteCodeLength {
		return code
	}
	return RandomCode(rng)
}

// RandomCode draws an uppercase base-36 room code
func RandomCode(rng *vmath.FastRand) string {
	b := make([]byte, constants.InviteCodeLength)
	for i := range b {
		b[i] = codeAlphabet[rng.Intn(len(codeAlphabet))]
	}
	return string(b)
}
