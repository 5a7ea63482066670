package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	agent "github.com/mutablelogic/go-agent"
	runner "github.com/mutablelogic/go-agent/pkg/runner"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	Model  string `arg:"" help:"Model name" optional:""`
	System string `flag:"system" help:"Set the system prompt"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ChatCmd) Run(globals *Globals) error {
	r, err := newRunner(globals, cmd.Model, cmd.System)
	if err != nil {
		return err
	}

	// Continue looping until end of input, carrying the conversation
	// from one turn to the next
	var conversation schema.Conversation
	stdin := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		input, err := stdin.ReadString('\n')
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		// Ignore empty input
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		// Run the loop for this turn
		opts := []runner.Opt{}
		if conversation != nil {
			opts = append(opts, runner.WithConversation(conversation))
		}
		run, err := r.Run(globals.ctx, input, opts...)
		switch {
		case errors.Is(err, agent.ErrCancelled):
			return nil
		case err != nil:
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		fmt.Println(run.Answer())
		conversation = run.Conversation
	}
}
