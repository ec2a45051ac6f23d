package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"

	"github.com/lox/handreplay/internal/phh"
	"github.com/lox/handreplay/internal/script"
)

func TestDealCmdGeneratesParseableScript(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sample.txt")
	seed := int64(42)

	cmd := &DealCmd{TableSize: 6, Seed: &seed, Out: out}
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	hand, err := script.Parse(strings.Split(string(data), "\n"), 6)
	require.NoError(t, err)
	require.Len(t, hand.HoleCards, 6)
	for seat, hole := range hand.HoleCards {
		require.NotNil(t, hole[0], "seat %d missing hole cards", seat)
		require.NotNil(t, hole[1], "seat %d missing hole cards", seat)
	}
	require.NotEmpty(t, hand.Actions)
}

func TestDealCmdDeterministicPerSeed(t *testing.T) {
	dir := t.TempDir()
	seed := int64(7)

	first := filepath.Join(dir, "a.txt")
	second := filepath.Join(dir, "b.txt")
	require.NoError(t, (&DealCmd{TableSize: 9, Seed: &seed, Out: first}).Run())
	require.NoError(t, (&DealCmd{TableSize: 9, Seed: &seed, Out: second}).Run())

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, string(a), string(b))
}

func TestExportCmdWritesPHH(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "hand1.txt")
	src := strings.Join([]string{
		"HAND BTN Ah Kh",
		"HAND BB 9c 9d",
		"BTN bet 3.5",
		"BB call 3.5",
		"FLOP 7h 10c Js",
	}, "\n")
	require.NoError(t, os.WriteFile(scriptPath, []byte(src), 0644))

	out := filepath.Join(dir, "hand1.phh")
	cmd := &ExportCmd{File: scriptPath, TableSize: 2, Out: out}
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var record phh.HandHistory
	_, err = toml.Decode(string(data), &record)
	require.NoError(t, err)
	require.Equal(t, "hand1", record.HandID)
	require.Equal(t, 2, record.SeatCount)
	require.Contains(t, record.Actions, "d db 7hTcJs")
}

func TestCheckCmdReportsLineNumber(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("BTN raise 3\nXX fold\n"), 0644))

	cmd := &CheckCmd{Files: []string{path}, TableSize: 6}
	err := cmd.Run()
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")
}
