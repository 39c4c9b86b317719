package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"unsafe"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
//
// Every top level key of the YAML document names a command (e.g. `encode:`) or an option group
// (e.g. `general:`). The value is decoded straight into the struct registered for it, so the keys
// below it follow the `yaml` tags of that struct:
//
//	general:
//	  log-format: json
//	encode:
//	  compact: true
//	  workers: 0
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error or a YAML syntax error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Tell the decoder the location of the file and enable recursive directories. This allows you to
	// reference files in subdirs
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse takes an input stream (a reader) and parses YAML segments one after another, using the
// provided decode options. This allows you to have multiple individual YAML segments within one
// physical file / input stream, all separated by triple dashes (`---`).
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// findGroup looks up a command by name first and falls back to an option group of the main
// parser, matched by its short description.
func (y *YamlParser) findGroup(name string) *flags.Group {
	if command := y.parser.Find(name); command != nil {
		return command.Group
	}
	return y.parser.Group.Find(name)
}

// parseSegment will get the "segment" from our input stream and match every top level key to a
// command or a group.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		group := y.findGroup(name)
		if group == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command or group '%s'", name),
			})
		}
		if val == nil {
			continue
		}

		// The flags library does not give access to the struct behind a group, so it is read from
		// the unexported `data` field.
		dataField := reflect.Indirect(reflect.ValueOf(group)).FieldByName("data")
		dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
		target := dataField.Elem() // the pointer to the options struct

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, target.Interface()); err != nil {
			return errors.Wrapf(err, "Could not apply configuration of '%s'", name)
		}
	}
	return nil
}
