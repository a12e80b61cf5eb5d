/*
Package learngl provides the shared pieces of a series of OpenGL 3.3 core
triangle demos: a shader program builder, the per-window render state, and
the small amount of configuration and input handling every demo needs.

# Overview

The package does not call OpenGL itself. Everything that talks to the GPU
goes through the Driver interface; backend/opengl implements it with go-gl
and also provides the GLFW window, mesh upload and the frame loop. This
keeps the builder's behavior testable without a graphics context.

# Quick Start

	// Setup (a context must be current)
	driver := opengl.NewDriver()
	prog, err := learngl.LoadShaderProgram(driver, "vertex.vert", "fragment.frag")
	if err != nil {
	    return err
	}
	defer prog.Delete()

	// Frame loop
	for !window.ShouldClose() {
	    prog.Use()
	    prog.SetVec4("ourColor", 0, learngl.Pulse(glfw.GetTime()), 0, 1)
	    mesh.Draw()
	    window.SwapBuffers()
	}

# Building Programs

LoadShaderProgram reads both source files, compiles the vertex and fragment
stages independently, attaches them to a new program and links it. The
stage objects are deleted after the link attempt whether or not it
succeeded.

Failures come in three kinds, all usable with errors.As:

  - *FileReadError: a source file could not be read.
  - *ShaderCompileError: a stage failed to compile; carries the stage and
    the driver's log, truncated to the info log size (1024 bytes by default).
  - *ProgramLinkError: linking failed; carries the driver's log.

By default the first read failure aborts construction before the driver is
touched, and compile or link failures release the program and return all
diagnostics joined together. WithBestEffort restores log-and-continue
behavior: failures are logged through slog, unreadable files compile as
empty source, and the possibly unlinked program is returned. Check Linked
before drawing with it.

# Uniforms

SetInt, SetBool, SetFloat and SetVec4 resolve a name to a location and
write to the currently active program. A name that is not an active uniform
resolves to -1 and the call does nothing, matching the driver. Use
WithMissingUniformWarnings to log such names once.

# Keyboard

The demos share three bindings:

  - Esc: close the window
  - W: toggle wireframe (once per press)
  - R: rebuild shaders from disk

With shaders.hot_reload set in the config, programs are also rebuilt when
their source files change; a failed rebuild keeps the previous program.
*/
package learngl
