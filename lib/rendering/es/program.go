//go:build linux

package es

import (
	"strings"

	"github.com/fosdem/tricolour/lib/rendering/shaders"
	"github.com/go-gl/gl/v3.1/gles2"
)

func BuildProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := loadShader(vertexShaderSource, gles2.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := loadShader(fragmentShaderSource, gles2.FRAGMENT_SHADER)
	if err != nil {
		gles2.DeleteShader(vertexShader)
		return 0, err
	}

	program := gles2.CreateProgram()
	gles2.AttachShader(program, vertexShader)
	gles2.AttachShader(program, fragmentShader)
	gles2.LinkProgram(program)

	gles2.DeleteShader(vertexShader)
	gles2.DeleteShader(fragmentShader)

	var linked int32
	gles2.GetProgramiv(program, gles2.LINK_STATUS, &linked)
	if linked == gles2.FALSE {
		var infoLen int32
		gles2.GetProgramiv(program, gles2.INFO_LOG_LENGTH, &infoLen)

		infoLog := strings.Repeat("\x00", int(infoLen+1))
		if infoLen > 1 {
			gles2.GetProgramInfoLog(program, infoLen, nil, gles2.Str(infoLog))
		}
		gles2.DeleteProgram(program)

		return 0, &shaders.LinkError{Log: shaders.TrimLog(infoLog)}
	}

	return program, nil
}

func DeleteProgram(program uint32) {
	gles2.DeleteProgram(program)
}

func loadShader(source string, shaderType uint32) (uint32, error) {
	shader := gles2.CreateShader(shaderType)

	csources, free := gles2.Strs(source)
	size := int32(len(source))
	gles2.ShaderSource(shader, 1, csources, &size)
	free()
	gles2.CompileShader(shader)

	var compiled int32
	gles2.GetShaderiv(shader, gles2.COMPILE_STATUS, &compiled)
	if compiled == gles2.FALSE {
		var infoLen int32
		gles2.GetShaderiv(shader, gles2.INFO_LOG_LENGTH, &infoLen)

		infoLog := strings.Repeat("\x00", int(infoLen+1))
		if infoLen > 1 {
			gles2.GetShaderInfoLog(shader, infoLen, nil, gles2.Str(infoLog))
		}
		gles2.DeleteShader(shader)

		stage := "fragment"
		if shaderType == gles2.VERTEX_SHADER {
			stage = "vertex"
		}
		return 0, &shaders.CompileError{Stage: stage, Log: shaders.TrimLog(infoLog)}
	}

	return shader, nil
}
