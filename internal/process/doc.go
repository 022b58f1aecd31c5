// Package process terminates the headless Chrome started for PDF export,
// together with the renderer and GPU helpers it forks.
package process
