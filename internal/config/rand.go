package config

import (
	"crypto/sha256"
	"encoding/hex"
	"math/rand"
	"strconv"
	"time"
)

const hexAlphabet = "0123456789abcdef"

// HexID draws a random lowercase hex string of the given length from rng.
func HexID(rng *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = hexAlphabet[rng.Intn(len(hexAlphabet))]
	}
	return string(b)
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Hash36 reduces the SHA-256 of seed to a base-36-ish string of the given
// length. It is a pure function of its input, so identifiers derived from it
// survive reruns unchanged.
func Hash36(seed string, length int) string {
	sum := sha256.Sum256([]byte(seed))
	digest := hex.EncodeToString(sum[:])
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		v, _ := strconv.ParseUint(digest[i*2:i*2+2], 16, 8)
		out[i] = base36Alphabet[int(v)%len(base36Alphabet)]
	}
	return string(out)
}

// HashHex returns the first length hex chars of SHA-256(seed).
func HashHex(seed string, length int) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:length]
}

// DaysInMonth returns the number of days in the given calendar month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DatetimeInMonth returns a random working-hours timestamp within the given
// month, never later than today. If the month is current, days are capped at
// today's; a fully future month collapses onto today's date.
func DatetimeInMonth(rng *rand.Rand, year, month int, today time.Time) time.Time {
	maxDay := DaysInMonth(year, month)
	if year == today.Year() && month == int(today.Month()) {
		maxDay = today.Day()
	} else if time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).After(today) {
		year, month, maxDay = today.Year(), int(today.Month()), today.Day()
	}
	day := 1 + rng.Intn(maxDay)
	hour := 6 + rng.Intn(17) // working hours-ish
	minute := rng.Intn(60)
	second := rng.Intn(60)
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
}
