package apikey_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cargohub-api/pkg/apikey"
)

func TestGenerate_ClavesUnicasConPrefijo(t *testing.T) {
	a := apikey.Generate()
	b := apikey.Generate()
	assert.True(t, strings.HasPrefix(a, apikey.Prefix))
	assert.NotEqual(t, a, b)
}

func TestHashVerify_RoundTrip(t *testing.T) {
	key := apikey.Generate()
	hash, err := apikey.Hash(key)
	require.NoError(t, err)

	assert.True(t, apikey.Verify(hash, key))
	assert.False(t, apikey.Verify(hash, key+"x"))
}
