// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package process

import (
	"os/exec"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// killGracePeriod is how long Wait keeps reading the child's output
// pipes after the child has been killed.
const killGracePeriod = 2 * time.Second

// configureProcess sets up cancellation for cmd. A non-interactive
// program gets its own process group and context cancellation SIGKILLs
// the whole group (negative PID). An interactive program stays in the
// foreground group: a background group is stopped with SIGTTIN as soon
// as it reads the terminal.
func configureProcess(cmd *exec.Cmd, interactive bool) {
	cmd.WaitDelay = killGracePeriod
	if interactive {
		return
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}
}
