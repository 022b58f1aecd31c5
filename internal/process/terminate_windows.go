//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// Terminate kills pid and its child processes with taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func Terminate(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort; the launcher kills the leader itself afterwards
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
