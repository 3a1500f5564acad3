package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsoleAsk(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("\n  sales  \n"), out)

	answer, err := c.Ask("Table format", "delta")
	require.NoError(t, err)
	require.Equal(t, "delta", answer)

	answer, err = c.Ask("Table name", "")
	require.NoError(t, err)
	require.Equal(t, "sales", answer)

	require.Contains(t, out.String(), "Table format [delta]: ")
	require.Contains(t, out.String(), "Table name: ")
}

func TestConsoleAskLastLineWithoutNewline(t *testing.T) {
	c := NewConsole(strings.NewReader("orders"), io.Discard)

	answer, err := c.Ask("Table name", "")
	require.NoError(t, err)
	require.Equal(t, "orders", answer)

	_, err = c.Ask("Table name", "")
	require.ErrorIs(t, err, io.EOF)
}

func TestConsoleConfirm(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("maybe\nYes\n\nn\n"), out)

	ok, err := c.Confirm("Continue?", false)
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, out.String(), `Please answer y or n, got "maybe".`)

	ok, err = c.Confirm("Continue?", true)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = c.Confirm("Continue?", true)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestConsoleSelect(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader("2\nregion\n9\n\n"), out)
	choices := []string{"id", "dt"}

	tests := []string{"dt", "region", "9", ""}
	for _, want := range tests {
		got, err := c.Select("Partition column", choices)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Contains(t, out.String(), "1) id")
	require.Contains(t, out.String(), "2) dt")
}

func TestConsoleMessages(t *testing.T) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader(""), out)

	c.Warn("careful")
	c.Success("done")
	require.Equal(t, "careful\ndone\n", out.String())
}
