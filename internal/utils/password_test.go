package utils_test

import (
	"testing"

	"github.com/sazonapp/pos_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := utils.HashPassword("caja-segura-2024")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)

	assert.NotEqual(t, "caja-segura-2024", hashed)
	assert.True(t, utils.CheckPasswordHash("caja-segura-2024", hashed))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := utils.HashPassword("mismo-secreto")
	require.NoError(t, err)
	second, err := utils.HashPassword("mismo-secreto")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
	assert.True(t, utils.CheckPasswordHash("mismo-secreto", first))
	assert.True(t, utils.CheckPasswordHash("mismo-secreto", second))
}

func TestCheckPasswordHash_Rejects(t *testing.T) {
	hashed, err := utils.HashPassword("clave-correcta")
	require.NoError(t, err)

	assert.False(t, utils.CheckPasswordHash("clave-incorrecta", hashed))
	assert.False(t, utils.CheckPasswordHash("clave-correcta", "no-es-un-hash"))
	assert.False(t, utils.CheckPasswordHash("", hashed))
}
