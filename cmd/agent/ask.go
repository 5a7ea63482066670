package main

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type AskCmd struct {
	Text   string `arg:"" help:"User input text"`
	Model  string `flag:"model" help:"Model name"`
	System string `flag:"system" help:"Set the system prompt"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *AskCmd) Run(globals *Globals) error {
	r, err := newRunner(globals, cmd.Model, cmd.System)
	if err != nil {
		return err
	}

	run, err := r.Run(globals.ctx, cmd.Text)
	if err != nil {
		return err
	}
	fmt.Println(run.Answer())
	return nil
}
