// Package input decodes the class table produced by the source walker.
//
// The walker emits one YAML document per run. Each class carries its raw
// doc comment, the literal keys of its definition call and its members,
// each with a raw comment and whatever the walker inferred from code.
//
//	classes:
//	  - name: Ext.Button
//	    file: src/Button.js
//	    line: 12
//	    comment: "/** A button. @since 2.0 */"
//	    declaration:
//	      call: Ext.define
//	      extend: Ext.Component
//	      mixins: [Ext.util.Focusable]
//	    members:
//	      - kind: method
//	        name: click
//	        line: 40
//	        comment: "/** Fires the handler. */"
//	        code:
//	          params: [{name: e, type: Event}]
package input

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	tderrors "git.home.luguber.info/inful/tagdoc/internal/errors"
	"git.home.luguber.info/inful/tagdoc/internal/model"
)

// File is one decoded class table.
type File struct {
	// Path is where the file was read from; used in errors.
	Path    string      `yaml:"-"`
	Classes []ClassSpec `yaml:"classes"`
}

// ClassSpec is one class as the walker saw it.
type ClassSpec struct {
	Name string `yaml:"name"`

	// DeclaredName overrides the name used for attribution. An explicit
	// empty string marks an anonymous override.
	DeclaredName *string `yaml:"declared_name,omitempty"`

	File        string         `yaml:"file"`
	Line        int            `yaml:"line"`
	Comment     string         `yaml:"comment,omitempty"`
	Declaration map[string]any `yaml:"declaration,omitempty"`
	Members     []MemberSpec   `yaml:"members,omitempty"`
}

// MemberSpec is one member as the walker saw it. File defaults to the
// class file.
type MemberSpec struct {
	Kind    model.Kind `yaml:"kind"`
	Name    string     `yaml:"name"`
	ID      string     `yaml:"id,omitempty"`
	File    string     `yaml:"file,omitempty"`
	Line    int        `yaml:"line"`
	Comment string     `yaml:"comment,omitempty"`
	Code    CodeInfo   `yaml:"code,omitempty"`
}

// CodeInfo is what the walker inferred from the member's code.
type CodeInfo struct {
	Type    string      `yaml:"type,omitempty"`
	Default string      `yaml:"default,omitempty"`
	Params  []ParamSpec `yaml:"params,omitempty"`
	Return  string      `yaml:"return,omitempty"`
	// Flags lists boolean tags the code implies, such as static.
	Flags []string `yaml:"flags,omitempty"`
}

// ParamSpec is one parameter from a function signature.
type ParamSpec struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type,omitempty"`
	Default string `yaml:"default,omitempty"`
}

// Load reads and decodes the class table at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tderrors.InputDecode(path, err)
	}
	return Decode(bytes.NewReader(data), path)
}

// Decode reads a class table from r. Unknown keys are rejected so walker
// and tool versions cannot drift silently.
func Decode(r io.Reader, path string) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	f := &File{Path: path}
	if err := dec.Decode(f); err != nil && err != io.EOF {
		return nil, tderrors.InputDecode(path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks names and kinds. Member id clashes are not errors; the
// scan stage warns about them.
func (f *File) Validate() error {
	seen := make(map[string]bool, len(f.Classes))
	for i, c := range f.Classes {
		if c.Name == "" {
			return tderrors.InputInvalid(f.Path, fmt.Sprintf("class %d has no name", i))
		}
		if err := checkClassName(c.Name); err != nil {
			return tderrors.InputInvalid(f.Path, fmt.Sprintf("class %q: %v", c.Name, err))
		}
		if seen[c.Name] {
			return tderrors.InputInvalid(f.Path, fmt.Sprintf("class %s defined twice", c.Name))
		}
		seen[c.Name] = true
		for j, m := range c.Members {
			if !m.Kind.IsMember() {
				return tderrors.InputInvalid(f.Path, fmt.Sprintf("class %s member %d: unknown kind %q", c.Name, j, m.Kind))
			}
			if m.Name == "" {
				return tderrors.InputInvalid(f.Path, fmt.Sprintf("class %s member %d has no name", c.Name, j))
			}
		}
	}
	return nil
}

// checkClassName rejects names that cannot be used as a page file name
// inside the output directory.
func checkClassName(name string) error {
	if name == "." || name == ".." {
		return fmt.Errorf("reserved name")
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("name contains a path separator or NUL")
	}
	return nil
}
