package fair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntDeterministic(t *testing.T) {
	// Одинаковые входы всегда дают одинаковый выход
	for i := 0; i < 100; i++ {
		first := Int("seed-abc", i, 52)
		second := Int("seed-abc", i, 52)
		assert.Equal(t, first, second, "index %d", i)
	}
}

func TestIntRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := Int("range-check", i, 7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
}

func TestIntSeedSensitivity(t *testing.T) {
	// Разные сиды должны давать разные последовательности
	var diff int
	for i := 0; i < 100; i++ {
		if Int("seed-a", i, 1000) != Int("seed-b", i, 1000) {
			diff++
		}
	}
	assert.Greater(t, diff, 90)
}

func TestIntZeroModulus(t *testing.T) {
	assert.Equal(t, 0, Int("seed", 0, 0))
	assert.Equal(t, 0, Int("seed", 0, -5))
}

func TestNewServerSeed(t *testing.T) {
	seed, err := NewServerSeed()
	require.NoError(t, err)
	assert.Len(t, seed, 64)

	other, err := NewServerSeed()
	require.NoError(t, err)
	assert.NotEqual(t, seed, other)
}

func TestCommitment(t *testing.T) {
	seedHash, publicHash := Commitment("my-server-seed")

	// Цепочка воспроизводима: hash(seed) и hash(hash(seed))
	assert.Equal(t, Hash("my-server-seed"), seedHash)
	assert.Equal(t, Hash(seedHash), publicHash)
	assert.Len(t, seedHash, 64)
	assert.Len(t, publicHash, 64)
}
