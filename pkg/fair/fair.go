package fair

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Ширина префикса hex-дайджеста, из которого читается число (32 бита)
const prefixLen = 8

// Int - детерминированный выбор числа в диапазоне [0, modulus).
// Берется sha256 от строки "seed-index", первые prefixLen hex-символов
// читаются как беззнаковое целое и приводятся по модулю modulus.
// Одинаковые (seed, index, modulus) всегда дают одинаковый результат -
// на этом строится проверяемая честность (provably fair)
func Int(seed string, index int, modulus int) int {
	if modulus <= 0 {
		return 0
	}

	digest := sha256.Sum256([]byte(seed + "-" + strconv.Itoa(index)))
	hexDigest := hex.EncodeToString(digest[:])

	// Ошибки быть не может: на входе всегда валидный hex фиксированной длины
	v, _ := strconv.ParseUint(hexDigest[:prefixLen], 16, 64)

	return int(v % uint64(modulus))
}

// NewServerSeed - генерирует криптографически случайный серверный сид (64 hex-символа)
func NewServerSeed() (string, error) {
	b := make([]byte, 32) // 256 бит
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// NewClientSeed - генерирует клиентский сид на стороне сервера,
// если клиент не прислал свой (16 hex-символов)
func NewClientSeed() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// Hash - sha256 от строки в hex-виде
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Commitment - цепочка обязательств по серверному сиду.
// serverSeedHash публикуется клиенту до начала игры,
// publicHash (двойной хэш) - публичное обязательство для верификации
func Commitment(serverSeed string) (serverSeedHash, publicHash string) {
	serverSeedHash = Hash(serverSeed)
	publicHash = Hash(serverSeedHash)
	return serverSeedHash, publicHash
}
