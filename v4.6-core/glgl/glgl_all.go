package glgl

import (
	"errors"
	"log/slog"
)

type WindowConfig struct {
	Title        string
	NotResizable bool
	Version      [2]int

	OpenGLProfile int // Use [ProfileCore], [ProfileCompat], [ProfileAny].
	ForwardCompat bool
	Width, Height int
	HideWindow    bool // Set glfw.Visible to false
	DebugLog      *slog.Logger
}

type Program struct {
	rid uint32
}

func CompileProgram(ss ShaderSource) (prog Program, err error) {
	if ss.Compute != "" && (ss.Fragment != "" || ss.Vertex != "") {
		return Program{}, errors.New("cannot compile compute and frag/vertex together")
	}
	if ss.Compute == "" && ss.Fragment == "" && ss.Vertex == "" {
		if ss.Include != "" {
			return Program{}, errors.New("only found `#shader include` part of program")
		}
		return Program{}, errors.New("empty program")
	}

	prog, err = compileSources(ss)
	return prog, err
}

// VertexArray ties data layout with vertex buffer(s).
// Is aware of data layout via VertexAttribPointer* calls.
// Vertex array parameters are client state, that is to say the GPU is unaware of it.
type VertexArray struct {
	rid uint32
}
