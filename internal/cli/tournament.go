package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTournamentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tournament",
		Aliases: []string{"t"},
		Short:   "Tournament management commands",
	}

	cmd.AddCommand(newTournamentCreateCmd())
	cmd.AddCommand(newTournamentListCmd())
	cmd.AddCommand(newTournamentGetCmd())
	cmd.AddCommand(newTournamentStatusCmds()...)
	cmd.AddCommand(newTournamentRegistrationCmd())
	cmd.AddCommand(newTournamentSettingsCmd())
	cmd.AddCommand(newTournamentCutCmd())
	cmd.AddCommand(newTournamentPruneCmd())

	return cmd
}

func newTournamentCreateCmd() *cobra.Command {
	var preset, format string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":   args[0],
				"preset": preset,
				"format": format,
			}

			var result Tournament
			if err := client.Post("/api/v1/tournaments", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "swiss", "Pairing preset: swiss, fluid")
	cmd.Flags().StringVar(&format, "format", "", "Game format (required)")
	_ = cmd.MarkFlagRequired("format")

	return cmd
}

func newTournamentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tournaments",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TournamentList
			if err := client.Get("/api/v1/tournaments", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTournamentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get tournament details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Tournament
			if err := client.Get(fmt.Sprintf("/api/v1/tournaments/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTournamentStatusCmds() []*cobra.Command {
	verbs := []struct {
		use   string
		short string
	}{
		{"start", "Start the tournament"},
		{"freeze", "Pause the tournament"},
		{"thaw", "Resume a frozen tournament"},
		{"end", "End the tournament"},
		{"cancel", "Cancel the tournament"},
	}

	cmds := make([]*cobra.Command, 0, len(verbs))
	for _, verb := range verbs {
		cmds = append(cmds, &cobra.Command{
			Use:   verb.use + " <id>",
			Short: verb.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var result Tournament
				path := fmt.Sprintf("/api/v1/tournaments/%s/%s", args[0], cmd.Name())
				if err := client.Post(path, nil, &result); err != nil {
					return err
				}

				out := NewOutput(cfg.Output)
				out.Print(result)
				return nil
			},
		})
	}
	return cmds
}

func newTournamentRegistrationCmd() *cobra.Command {
	var open, closed bool

	cmd := &cobra.Command{
		Use:   "registration <id>",
		Short: "Open or close registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if open == closed {
				return fmt.Errorf("exactly one of --open or --close is required")
			}

			req := map[string]bool{"open": open}
			path := fmt.Sprintf("/api/v1/tournaments/%s/registration", args[0])
			if err := client.Patch(path, req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if open {
				out.PrintMessage("Registration opened")
			} else {
				out.PrintMessage("Registration closed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Open registration")
	cmd.Flags().BoolVar(&closed, "close", false, "Close registration")

	return cmd
}

func newTournamentSettingsCmd() *cobra.Command {
	var set []string

	cmd := &cobra.Command{
		Use:   "settings <id>",
		Short: "Apply tournament settings",
		Long: `Apply a batch of settings as key=value pairs. Each setting is reported
back as accepted, rejected, or errored; accepted settings take effect even
when others in the batch do not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(set) == 0 {
				return fmt.Errorf("at least one --set key=value is required")
			}

			batch := make(map[string]string, len(set))
			for _, kv := range set {
				key, value, ok := splitKeyValue(kv)
				if !ok {
					return fmt.Errorf("invalid setting %q: expected key=value", kv)
				}
				batch[key] = value
			}

			var result SettingsResult
			path := fmt.Sprintf("/api/v1/tournaments/%s/settings", args[0])
			if err := client.Patch(path, batch, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&set, "set", nil, "Setting as key=value (repeatable)")

	return cmd
}

func splitKeyValue(kv string) (string, string, bool) {
	for i := 0; i < len(kv); i++ {
		if kv[i] == '=' {
			return kv[:i], kv[i+1:], i > 0
		}
	}
	return "", "", false
}

func newTournamentCutCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "cut <id>",
		Short: "Cut standings to the top N players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"size": size}
			path := fmt.Sprintf("/api/v1/tournaments/%s/cut", args[0])
			if err := client.Post(path, req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Cut to top %d", size))
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "Number of players to keep (required)")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func newTournamentPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Prune players or decks that violate tournament requirements",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "players <id>",
		Short: "Drop players missing check-in or deck requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/tournaments/%s/prune/players", args[0])
			if err := client.Post(path, nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Players pruned")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "decks <id>",
		Short: "Trim deck registrations above the maximum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/tournaments/%s/prune/decks", args[0])
			if err := client.Post(path, nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Decks pruned")
			return nil
		},
	})

	return cmd
}
