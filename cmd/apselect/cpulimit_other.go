//go:build !unix

package main

// installCPULimit is a no-op on platforms without RLIMIT_CPU/SIGXCPU.
func installCPULimit() {}
