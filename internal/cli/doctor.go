package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/trainlog/internal/constants"
	"github.com/julianstephens/trainlog/internal/keyring"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: remote store reachable
	if err := checkRemote(ctx); err != nil {
		fmt.Printf("❌ Remote store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Remote store reachable: OK\n")
	}

	// Check 2: schedule cache readable
	if _, err := ctx.Cache.Load(); err != nil {
		fmt.Printf("❌ Schedule cache readable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Schedule cache readable: OK\n")
	}

	// Check 3: OS keyring available (warning only; secrets can also come
	// from flags)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring available: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring available: WARNING\n")
		fmt.Printf("   Secrets cannot be stored on this system\n")
	}

	// Check 4: no concurrent process. Storage assumes a single mutator
	// per process, so a second running instance risks lost writes.
	if others, err := concurrentProcesses(); err != nil {
		fmt.Printf("⚠ Single process: WARNING\n")
		fmt.Printf("   Could not list processes: %v\n", err)
	} else if len(others) > 0 {
		fmt.Printf("❌ Single process: FAIL\n")
		fmt.Printf("   Another %s process is running (pid %d)\n", constants.AppName, others[0])
		hasError = true
	} else {
		fmt.Printf("✓ Single process: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkRemote(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	probe, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := ctx.Store.ListEntries(probe, ctx.Session.UserID)
	return err
}

// concurrentProcesses returns the pids of other running trainlog processes.
func concurrentProcesses() ([]int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}
	var others []int
	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			others = append(others, p.Pid())
		}
	}
	return others, nil
}
