package animal

import (
	"math/rand"
	"strconv"
)

// GenerateCode returns a random code in [1000, 9999].
// Collisions between animals are possible and not checked.
func GenerateCode() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}
