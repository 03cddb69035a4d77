package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMust(t *testing.T) {
	require.Equal(t, 3, Must(3, nil))

	err := errors.New("boom")
	require.PanicsWithError(t, "boom", func() { Must(0, err) })
}

func TestLogger(t *testing.T) {
	defer SetLogger(GetLogger())

	var sb strings.Builder
	SetLogger(LoggerFunc(func(format string, v ...any) {
		sb.WriteString(format)
	}))
	GetLogger().Printf("resize %d", 1)
	require.Equal(t, "resize %d", sb.String())

	SetLogger(nil)
	require.NotPanics(t, func() { GetLogger().Printf("dropped") })
}
