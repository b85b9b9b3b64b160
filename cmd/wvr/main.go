package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

func main() {
	bin, err := exec.LookPath("waverun")
	if err != nil {
		fmt.Fprintln(os.Stderr, "wvr: waverun not found on PATH")
		os.Exit(1)
	}
	if err := syscall.Exec(bin, append([]string{"waverun"}, os.Args[1:]...), os.Environ()); err != nil {
		fmt.Fprintf(os.Stderr, "wvr: %v\n", err)
		os.Exit(1)
	}
}
