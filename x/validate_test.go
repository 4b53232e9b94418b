package x

import (
	"testing"

	"github.com/iov-one/vault"
	"github.com/stretchr/testify/assert"
)

func TestMustValidate(t *testing.T) {
	assert.NotPanics(t, func() { MustValidate(&vault.Metadata{Schema: 1}) })
	assert.Panics(t, func() { MustValidate(&vault.Metadata{}) })
}
