// Package shell resolves the interactive shell launched between the before
// and after phases, and the environment exported into it.
package shell
