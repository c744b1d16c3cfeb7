//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the demo application against the desktop backend.
func (Run) Demo() error {
	fmt.Println("Run demo...")
	if _, err := executeCmd("go", withArgs("run", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the demo application against the headless backend.
func (Run) Headless() error {
	fmt.Println("Run headless demo...")
	if _, err := executeCmd("go", withArgs("run", ".", "-config", "testbed/headless.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
