package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"text/template"
)

//go:embed *.frag *.vert
var templateDir embed.FS

// Dialect selects between the desktop core profile and OpenGL ES 2 sources.
type Dialect string

const (
	Core Dialect = "core"
	ES   Dialect = "es"
)

func (d Dialect) VertexName() string {
	return string(d) + ".vert"
}

func (d Dialect) FragmentName() string {
	return string(d) + ".frag"
}

type Attrib struct {
	Name     string
	Location uint32
}

// ShaderData contains stuff that gets passed to the shader templates
type ShaderData struct {
	Position Attrib
	Colour   Attrib
}

var (
	CoreData = &ShaderData{
		Position: Attrib{Name: "aPos", Location: 0},
		Colour:   Attrib{Name: "aColor", Location: 1},
	}
	// ES locations are assigned by the linker and must be queried.
	ESData = &ShaderData{
		Position: Attrib{Name: "a_position"},
		Colour:   Attrib{Name: "a_color"},
	}
)

type Shaderer struct {
	templates *template.Template
	source    string
}

// NewShaderer parses the templates in dir, or the built-in ones when dir
// is empty.
func NewShaderer(dir string) (*Shaderer, error) {
	var fsys fs.FS = templateDir
	source := "built-in"
	if dir != "" {
		fsys = os.DirFS(dir)
		source = dir
	}

	templates, err := template.New("").Option("missingkey=error").ParseFS(fsys, "*.frag", "*.vert")
	if err != nil {
		return nil, fmt.Errorf("could not parse shader templates from %s: %w", source, err)
	}
	return &Shaderer{templates: templates, source: source}, nil
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	if s.templates.Lookup(name) == nil {
		return "", fmt.Errorf("no shader template %s in %s", name, s.source)
	}

	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %w", err)
	}

	return b.String(), nil
}

// Sources renders the vertex and fragment shader for a dialect.
func (s *Shaderer) Sources(dialect Dialect, data *ShaderData) (string, string, error) {
	vertex, err := s.GetShaderSource(dialect.VertexName(), data)
	if err != nil {
		return "", "", fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragment, err := s.GetShaderSource(dialect.FragmentName(), data)
	if err != nil {
		return "", "", fmt.Errorf("could not get fragment shader: %w", err)
	}
	return vertex, fragment, nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		if t.Name() == "" {
			continue
		}
		names = append(names, t.Name())
	}
	return names
}

// Source describes where the templates were loaded from.
func (s *Shaderer) Source() string {
	return s.source
}
