package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		found[c.Intn(3)] = true
	}

	a.True(found[0])
	a.True(found[1])
	a.True(found[2])
	a.False(found[3])

	a.Panics(func() {
		c.Intn(0)
	})
}

func TestSeeded(t *testing.T) {
	g1 := Seeded(99)
	g2 := Seeded(99)
	for i := 0; i < 20; i++ {
		n := g1.Intn(10)
		assert.Equal(t, n, g2.Intn(10))
		assert.True(t, n >= 0 && n < 10)
	}
}
