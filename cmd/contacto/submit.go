package main

import (
	"fmt"

	"github.com/gcloudgt/contacto/internal/inquiry"
	"github.com/spf13/cobra"
)

var submitFlags struct {
	projectType string
	budget      string
	name        string
	email       string
	message     string
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit an inquiry without the form",
	Long: `Submit an inquiry non-interactively.

The values go through the same steps as the form: the project type and budget
must be catalog ids (see 'contacto catalog') and every field is required.`,
	RunE: runSubmit,
}

func init() {
	f := submitCmd.Flags()
	f.StringVarP(&submitFlags.projectType, "project-type", "t", "", "Project type id")
	f.StringVarP(&submitFlags.budget, "budget", "b", "", "Budget range id")
	f.StringVarP(&submitFlags.name, "name", "n", "", "Your name")
	f.StringVarP(&submitFlags.email, "email", "e", "", "Your email")
	f.StringVarP(&submitFlags.message, "message", "m", "", "Tell us about your idea")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	w := inquiry.New()
	if err := w.SelectProjectType(submitFlags.projectType); err != nil {
		return err
	}
	if err := w.SelectBudget(submitFlags.budget); err != nil {
		return err
	}
	if err := w.SetName(submitFlags.name); err != nil {
		return err
	}
	if err := w.SetEmail(submitFlags.email); err != nil {
		return err
	}
	if err := w.SetMessage(submitFlags.message); err != nil {
		return err
	}

	submitter, closeFn, err := openSubmitter(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeFn() }()

	notify := inquiry.NotifierFunc(func(msg string) {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	})
	return w.Submit(ctx, submitter, notify)
}
