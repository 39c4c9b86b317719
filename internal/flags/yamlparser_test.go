package flags

import (
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

var General struct {
	Compact bool   `yaml:"compact" long:"compact" description:"Use the compact termination"`
	File    string `yaml:"file"    long:"file"`
}

type encodeOptions struct {
	Compact bool `yaml:"compact" long:"compact"`
	Workers int  `yaml:"workers" long:"workers"`
}

func (e *encodeOptions) Execute([]string) error {
	return nil
}

type globalOptions struct {
	LogFormat string `yaml:"log-format" long:"log-format"`
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_GeneralParse(t *testing.T) {
	file := "testdata/general.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)

	data := &General
	_, err := parser.AddCommand("general", "General", "General options", data)
	require.NoErrorf(t, err, "Could not add general group")

	err = yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, true, data.Compact, "Invalid reading of boolean value")
	require.Equal(t, "something.txt", data.File, "Invalid reading of string value")
}

func Test_InvalidGeneralParse(t *testing.T) {
	file := "testdata/invalid_general.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)

	_, err := parser.AddCommand("general", "General", "General options", &General)
	require.NoErrorf(t, err, "Could not add general group")

	err = yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)

	_, err := parser.AddCommand("general", "General", "General options", &General)
	require.NoErrorf(t, err, "Could not add general group")

	err = yamlParser.ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)

	var flagsErr *flags.Error
	require.ErrorAs(t, err, &flagsErr)
	require.Equal(t, flags.ErrUnknownGroup, flagsErr.Type)
}

func Test_MissingFile(t *testing.T) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	err := NewYamlParser(parser).ParseFile("testdata/does-not-exist.yml")
	require.Error(t, err)
}

func Test_GroupAndCommandSegments(t *testing.T) {
	file := "testdata/multi.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	global := &globalOptions{LogFormat: "text"}
	_, err := parser.AddGroup("Options", "Global options", global)
	require.NoError(t, err)

	encode := &encodeOptions{}
	_, err = parser.AddCommand("encode", "Encode", "Encode data", encode)
	require.NoError(t, err)

	err = NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "json", global.LogFormat)
	require.True(t, encode.Compact)
	require.Equal(t, 4, encode.Workers)
}

func Test_ParseReaderSyntaxError(t *testing.T) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	_, err := parser.AddCommand("general", "General", "General options", &General)
	require.NoError(t, err)

	err = NewYamlParser(parser).Parse(strings.NewReader("general: [unclosed"))
	require.Error(t, err)
}
