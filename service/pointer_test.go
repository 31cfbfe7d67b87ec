package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	s := "hello"
	p := Ptr(s)
	require.NotNil(t, p)
	assert.Equal(t, s, *p)

	*p = "changed"
	assert.Equal(t, "hello", s)
}
