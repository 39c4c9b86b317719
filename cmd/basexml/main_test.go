package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/kriswebdev/basexml"
	"github.com/kriswebdev/basexml/internal/util"
	"github.com/stretchr/testify/require"
)

func Test_EncodeDecode(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.bin")
	encoded := filepath.Join(dir, "in.bxml")
	decoded := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(input, []byte("Hello, World!"), 0o644))

	require.NoError(t, NewBaseXML("basexml").Run([]string{"encode", input, encoded}))
	require.NoError(t, NewBaseXML("basexml").Run([]string{"decode", "--workers", "2", encoded, decoded}))

	data, err := os.ReadFile(decoded)
	require.NoError(t, err)
	require.Equal(t, "Hello, World!", string(data))
}

func Test_ConfigurationFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.bin")
	output := filepath.Join(dir, "out.bxml")
	require.NoError(t, os.WriteFile(input, []byte("A"), 0o644))

	err := NewBaseXML("basexml").Run([]string{"-c", "testdata/compact.yml", "encode", input, output})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, []byte{0xC8, 0x80, 0x20, 0x3F, 0x31, 0x3F}, data)

	decoded, err := basexml.Decode(data)
	require.NoError(t, err)
	require.Equal(t, "A", string(decoded))
}

func Test_MissingConfigurationFile(t *testing.T) {
	err := NewBaseXML("basexml").Run([]string{"-c", "testdata/missing.yml", "version"})
	require.Error(t, err)

	var flagsErr *flags.Error
	require.ErrorAs(t, err, &flagsErr)
	require.Equal(t, ErrConfigFileDoesNotExist, flagsErr.Type)
	require.Equal(t, util.ErrSyntax, util.ExitCode(err))
}

func Test_TooManyArguments(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.bin")
	require.NoError(t, os.WriteFile(input, []byte("A"), 0o644))

	err := NewBaseXML("basexml").Run([]string{"encode", input, filepath.Join(dir, "out"), "extra"})
	require.Equal(t, util.ErrTooManyArgs, util.ExitCode(err))
}

func Test_UnknownCommand(t *testing.T) {
	err := NewBaseXML("basexml").Run([]string{"transcode"})
	require.Equal(t, util.ErrSyntax, util.ExitCode(err))
}
