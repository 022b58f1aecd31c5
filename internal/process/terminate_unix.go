//go:build !windows

package process

import "syscall"

// Terminate sends SIGKILL to the process group led by pid. Non-positive
// PIDs are ignored: -0 would target the caller's own group.
func Terminate(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort; the launcher kills the leader itself afterwards
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
