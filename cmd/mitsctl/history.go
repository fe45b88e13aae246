package main

import (
	"encoding/json"
	"fmt"

	"MITSAssistant/models"
	"MITSAssistant/pkg/app"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newHistoryCmd(with runner) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "history <session-id>",
		Short: "Print a conversation transcript",
		Args:  cobra.ExactArgs(1),
		RunE: with(func(cmd *cobra.Command, args []string, a *app.App) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported format %q (use json or yaml)", format)
			}
			msgs, err := a.Store.SessionMessages(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			views := make([]models.Message, 0, len(msgs))
			for _, m := range msgs {
				views = append(views, m.View())
			}

			out := cmd.OutOrStdout()
			if format == "yaml" {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(views); err != nil {
					return fmt.Errorf("failed to encode yaml: %w", err)
				}
				return enc.Close()
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(views)
		}),
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml)")
	return cmd
}
