// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textsource

import "os/exec"

// executor abstracts command execution so backend tests can run without
// the external binaries installed.
type executor interface {
	LookPath(file string) (string, error)
	RunOutput(name string, args ...string) ([]byte, error)
	RunSilent(name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunOutput(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

var defaultExec executor = &osExecutor{}
