package main

import (
	"fmt"
	"sync"

	// Packages
	agent "github.com/mutablelogic/go-agent"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
	errgroup "golang.org/x/sync/errgroup"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelsCmd struct {
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*ModelsCmd) Run(globals *Globals) error {
	if len(globals.clients) == 0 {
		return agent.ErrBadParameter.With("no provider configured: set OPENAI_API_KEY or OPENAI_URL")
	}

	// Query all providers in parallel
	var lock sync.Mutex
	models := make(map[string][]schema.Model, len(globals.clients))

	group, ctx := errgroup.WithContext(globals.ctx)
	for _, client := range globals.clients {
		group.Go(func() error {
			result, err := client.ListModels(ctx)
			if err != nil {
				return err
			}
			lock.Lock()
			defer lock.Unlock()
			models[client.Name()] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for _, client := range globals.clients {
		for _, model := range models[client.Name()] {
			fmt.Println(client.Name(), model.Name)
		}
	}
	return nil
}
