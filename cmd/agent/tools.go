package main

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolsCmd struct {
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*ToolsCmd) Run(globals *Globals) error {
	definitions, err := globals.toolkit.Definitions()
	if err != nil {
		return err
	}
	for _, definition := range definitions {
		fmt.Printf("%s\n  %s\n", definition.Name, definition.Description)
	}
	return nil
}
