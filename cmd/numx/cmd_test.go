package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSeq(t *testing.T) {
	out, err := run(t, "seq", "abc", "-n", "2")
	require.NoError(t, err)
	require.Equal(t, "0.41744336066767573\n0.7136264541186392\n", out)
}

func TestHash(t *testing.T) {
	out, err := run(t, "hash", "", "-n", "3")
	require.NoError(t, err)
	require.Equal(t, "167010153\n2610615433\n1495386444\n", out)
}

func TestPseudo(t *testing.T) {
	out, err := run(t, "pseudo", "42", "5")
	require.NoError(t, err)
	require.Equal(t, "42\t0.17992336838506162\n5\t0.31343647954054177\n", out)
}

func TestBadCount(t *testing.T) {
	_, err := run(t, "seq", "abc", "-n", "0")
	require.ErrorIs(t, err, errCount)
}

func TestFixturesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.arrow")
	_, err := run(t, "fixtures", "-o", path)
	require.NoError(t, err)
	out, err := run(t, "fixtures", "--verify", path)
	require.NoError(t, err)
	require.False(t, strings.Contains(out, "Error"))
}
