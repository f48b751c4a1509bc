package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHashService_HashAndVerify(t *testing.T) {
	svc := NewBcryptHashService()

	hash, err := svc.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	valid, err := svc.Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestBcryptHashService_Verify_WrongPassword(t *testing.T) {
	svc := NewBcryptHashService()

	hash, err := svc.Hash("password-one")
	require.NoError(t, err)

	valid, err := svc.Verify("password-two", hash)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestBcryptHashService_Hash_UniqueSalts(t *testing.T) {
	svc := NewBcryptHashService()

	h1, err := svc.Hash("same-password")
	require.NoError(t, err)
	h2, err := svc.Hash("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
