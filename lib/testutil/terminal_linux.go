// Copyright 2026 The Stew Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// terminalTimeout bounds one [RunInTerminal] child.
const terminalTimeout = time.Minute

// RunInTerminal re-runs the test named testName from the current test
// binary as the session leader of a fresh pseudo-terminal, so the test
// and every program it starts in its process group can open /dev/tty.
// input is typed at the terminal before the test starts. It returns
// everything written to the terminal, including the test binary's -v
// output. The test is skipped when no pseudo-terminal can be
// allocated; it fails when the child test fails.
func RunInTerminal(t *testing.T, testName, input string) string {
	t.Helper()

	master, slavePath, err := openPTY()
	if err != nil {
		t.Skipf("no pseudo-terminal available: %v", err)
	}
	defer master.Close()

	slave, err := os.OpenFile(slavePath, os.O_RDWR|syscall.O_NOCTTY, 0)
	if err != nil {
		t.Fatalf("opening %s: %v", slavePath, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), terminalTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=^"+testName+"$", "-test.v", "-test.count=1")
	cmd.Env = append(os.Environ(), terminalEnv+"=1")
	cmd.Stdin = slave
	cmd.Stdout = slave
	cmd.Stderr = slave
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
		Ctty:    0,
	}

	if err := cmd.Start(); err != nil {
		slave.Close()
		t.Fatalf("starting %s in a terminal: %v", testName, err)
	}
	slave.Close()

	var output bytes.Buffer
	readDone := make(chan struct{})
	go func() {
		// Reads end with EIO once every slave descriptor is closed.
		io.Copy(&output, master)
		close(readDone)
	}()

	if _, err := master.WriteString(input); err != nil {
		t.Fatalf("typing input: %v", err)
	}

	waitErr := cmd.Wait()
	select {
	case <-readDone:
	case <-time.After(5 * time.Second):
		master.Close()
		<-readDone
	}
	if waitErr != nil {
		t.Fatalf("%s failed in a terminal: %v\n%s", testName, waitErr, output.String())
	}
	return output.String()
}

// openPTY allocates a pseudo-terminal pair through /dev/ptmx and
// returns the master and the slave's path.
func openPTY() (*os.File, string, error) {
	master, err := os.OpenFile("/dev/ptmx", os.O_RDWR|syscall.O_NOCTTY, 0)
	if err != nil {
		return nil, "", fmt.Errorf("open /dev/ptmx: %w", err)
	}

	// Control keeps master on the runtime poller, so Close interrupts
	// a pending Read.
	raw, err := master.SyscallConn()
	if err != nil {
		master.Close()
		return nil, "", fmt.Errorf("raw PTY master: %w", err)
	}
	var ptyNumber int
	var ioctlErr error
	err = raw.Control(func(fd uintptr) {
		ptyNumber, ioctlErr = unix.IoctlGetInt(int(fd), unix.TIOCGPTN)
		if ioctlErr != nil {
			ioctlErr = fmt.Errorf("get PTY number (TIOCGPTN): %w", ioctlErr)
			return
		}
		if ioctlErr = unix.IoctlSetPointerInt(int(fd), unix.TIOCSPTLCK, 0); ioctlErr != nil {
			ioctlErr = fmt.Errorf("unlock PTY slave (TIOCSPTLCK): %w", ioctlErr)
		}
	})
	if err == nil {
		err = ioctlErr
	}
	if err != nil {
		master.Close()
		return nil, "", err
	}
	return master, fmt.Sprintf("/dev/pts/%d", ptyNumber), nil
}
