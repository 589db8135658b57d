package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tdtracker/td/task"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task to the current project",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var (
	addDescription string
	addTags        string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description of the task")
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "Comma-separated list of tags")

	// --desc is a hidden spelling of --description; it shares the one
	// flag rather than registering a second one.
	normalize := addCmd.Flags().GetNormalizeFunc()
	addCmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "desc" {
			name = "description"
		}
		return normalize(f, name)
	})
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	created := task.New(args[0], task.CreateOptions{
		Description: addDescription,
		Tags:        task.ParseTags(addTags),
	})

	if _, err := store.Add(created); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s\n", created.ID, created.Title)
	return nil
}
