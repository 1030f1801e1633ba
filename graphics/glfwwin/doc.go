// Package glfwwin provides a graphics.Context backed by a visible GLFW
// window. It is the native-display counterpart of graphics.HeadlessWindow and
// is useful for checking the rendered output on a desktop.
//
// The window links against GLFW and the X11 client libraries, so it is only
// built with the glfw build tag.
package glfwwin
