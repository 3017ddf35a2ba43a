// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	for _, bad := range []string{"", "Production", "test", "dev"} {
		_, err := ParseMode(bad)
		assert.ErrorIs(t, err, ErrUnknownMode, bad)
	}
}

func TestMode_Globals(t *testing.T) {
	dev, prod := ModeDevelopment.Globals()
	assert.True(t, dev)
	assert.False(t, prod)

	dev, prod = ModeProduction.Globals()
	assert.False(t, dev)
	assert.True(t, prod)

	dev, prod = Mode("").Globals()
	assert.False(t, dev)
	assert.False(t, prod)
}

func TestMode_UnmarshalText(t *testing.T) {
	var m Mode

	require.NoError(t, m.UnmarshalText([]byte("production")))
	assert.Equal(t, ModeProduction, m)

	require.NoError(t, m.UnmarshalText(nil))
	assert.Equal(t, Mode(""), m)

	assert.ErrorIs(t, m.UnmarshalText([]byte("staging")), ErrUnknownMode)
}
