package shaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGL struct {
	next    uint32
	fail    bool
	deleted []uint32
	vertex  string
	builds  []error
}

func (f *fakeGL) loader(dir string, dialect Dialect, data *ShaderData) *Loader {
	return &Loader{
		Dir:     dir,
		Dialect: dialect,
		Data:    data,
		Build: func(vertexSrc, fragmentSrc string) (uint32, error) {
			f.vertex = vertexSrc
			if f.fail {
				return 0, &CompileError{Stage: "vertex", Log: "0:1: syntax error"}
			}
			f.next++
			return f.next, nil
		},
		Delete: func(program uint32) {
			f.deleted = append(f.deleted, program)
		},
		OnBuild: func(err error) {
			f.builds = append(f.builds, err)
		},
	}
}

func TestLoaderBuiltin(t *testing.T) {
	gl := &fakeGL{}
	program, err := gl.loader("", Core, CoreData).Load()
	require.NoError(t, err)

	assert.Equal(t, uint32(1), program)
	assert.True(t, strings.HasPrefix(gl.vertex, "#version 330 core"))
	assert.Equal(t, []error{nil}, gl.builds)
}

func TestLoaderBuildFailure(t *testing.T) {
	gl := &fakeGL{fail: true}
	_, err := gl.loader("", ES, ESData).Load()

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Contains(t, err.Error(), "could not build es program from built-in shaders")
	require.Len(t, gl.builds, 1)
	assert.Error(t, gl.builds[0])
}

func TestLoaderReload(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("core.vert", "// v1 {{.Position.Name}}\n")
	write("core.frag", "// f1\n")

	gl := &fakeGL{}
	l := gl.loader(dir, Core, CoreData)
	program, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "// v1 aPos\n", gl.vertex)

	write("core.vert", "// v2\n")
	program, ok := l.Reload(program)
	assert.True(t, ok)
	assert.Equal(t, uint32(2), program)
	assert.Equal(t, []uint32{1}, gl.deleted)
	assert.Equal(t, "// v2\n", gl.vertex)

	gl.fail = true
	program, ok = l.Reload(program)
	assert.False(t, ok)
	assert.Equal(t, uint32(2), program, "the old program stays in use")
	assert.Equal(t, []uint32{1}, gl.deleted)

	gl.fail = false
	write("core.vert", "{{.Missing}}")
	program, ok = l.Reload(program)
	assert.False(t, ok, "template errors keep the old program too")
	assert.Equal(t, uint32(2), program)
}
