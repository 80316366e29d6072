//go:build unix

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// cpuLimitSeconds bounds how long a single run may spend on CPU before
// the process is asked to stop cleanly. This is a fixed driver-level
// backstop, not a tunable exposed to callers.
const cpuLimitSeconds = 600

// installCPULimit sets a soft CPU-time limit and arranges for its
// expiry (delivered as SIGXCPU) to print the fixed resource-out
// diagnostic and exit 0. Cancellation is handled only at the process
// boundary, never inside the selection algorithm itself.
func installCPULimit() {
	var rlimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_CPU, &rlimit); err == nil {
		if rlimit.Cur == syscall.RLIM_INFINITY || rlimit.Cur > cpuLimitSeconds {
			rlimit.Cur = cpuLimitSeconds
			_ = syscall.Setrlimit(syscall.RLIMIT_CPU, &rlimit)
		}
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGXCPU)
	go func() {
		<-sigs
		fmt.Fprintln(os.Stderr, "apselect: resource out (CPU time limit exceeded)")
		os.Exit(0)
	}()
}
