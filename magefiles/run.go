//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the demo scene once.
func (Run) Demo() error {
	fmt.Println("Run demo scene...")
	if _, err := executeCmd("go", withArgs("run", "main.go", "-scene", "scenes/demo.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the demo scene and keeps watching the scene file for changes.
func (Run) Watch() error {
	fmt.Println("Run demo scene (watch mode)...")
	if _, err := executeCmd("go", withArgs("run", "main.go", "-scene", "scenes/demo.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}
