/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/pokedb/internal/ioschema"
	"github.com/gnames/pokedb/pkg/schema"
	"github.com/spf13/cobra"
)

// getReseedCmd returns the reseed command.
func getReseedCmd() *cobra.Command {
	reseedCmd := &cobra.Command{
		Use:   "reseed",
		Short: "Restore the fixed list of pokemon types",
		Long: `Reseed truncates the types table and inserts the 18 catalog
types in their catalog order, so that type ids match catalog ids.

Links between pokemon and types are removed as well. Run
'pokedb populate' afterwards to restore them.

The schema is created first if it does not exist.

Examples:
  pokedb reseed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runReseed()
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return reseedCmd
}

func runReseed() error {
	ctx := context.Background()

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	sm := ioschema.NewManager(op)
	if err = sm.EnsureSchema(ctx); err != nil {
		return err
	}

	if err = sm.ReseedTypes(ctx, schema.TypeVocabulary); err != nil {
		return err
	}
	gn.Info("Inserted <em>%d</em> types", len(schema.TypeVocabulary))
	return nil
}
