//go:build !windows

package speech

import "os/exec"

func hideWindow(cmd *exec.Cmd) {}
