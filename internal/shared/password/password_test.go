package password_test

import (
	"testing"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/password"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, password.Verify("s3cret-pass", hash))
	assert.False(t, password.Verify("wrong-pass", hash))
}

func TestVerify_DistinctHashes(t *testing.T) {
	h1, err := password.Hash("alpha")
	assert.NoError(t, err)
	h2, err := password.Hash("beta")
	assert.NoError(t, err)

	assert.False(t, password.Verify("alpha", h2))
	assert.False(t, password.Verify("beta", h1))
}

func TestVerify_MalformedHash(t *testing.T) {
	assert.False(t, password.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, password.Verify("anything", ""))
}
