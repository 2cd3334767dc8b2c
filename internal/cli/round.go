package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "round",
		Aliases: []string{"r"},
		Short:   "Round management commands",
	}

	cmd.AddCommand(newRoundPairCmd())
	cmd.AddCommand(newRoundCreateCmd())
	cmd.AddCommand(newRoundListCmd())
	cmd.AddCommand(newRoundGetCmd())
	cmd.AddCommand(newRoundRemoveCmd())
	cmd.AddCommand(newRoundResultCmd())
	cmd.AddCommand(newRoundExtendCmd())

	return cmd
}

func newRoundPairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pair <tournament>",
		Short: "Pair the next round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Effect
			path := fmt.Sprintf("/api/v1/tournaments/%s/rounds/pair", args[0])
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoundCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <tournament> <player>...",
		Short: "Create a round with the given players",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string][]string{"players": args[1:]}

			var result Effect
			path := fmt.Sprintf("/api/v1/tournaments/%s/rounds", args[0])
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoundListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <tournament>",
		Short: "List rounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RoundList
			path := fmt.Sprintf("/api/v1/tournaments/%s/rounds", args[0])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoundGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <tournament> <round>",
		Short: "Get round details by match number or id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Round
			path := fmt.Sprintf("/api/v1/tournaments/%s/rounds/%s", args[0], args[1])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoundRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <tournament> <round>",
		Short: "Remove a round from play",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/tournaments/%s/rounds/%s", args[0], args[1])
			if err := client.Delete(path); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Removed round %s", args[1]))
			return nil
		},
	}
}

func newRoundResultCmd() *cobra.Command {
	var player string
	var wins int
	var draw bool

	cmd := &cobra.Command{
		Use:   "result <tournament> <round>",
		Short: "Record part of a round's result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if draw == (player != "") {
				return fmt.Errorf("exactly one of --draw or --player is required")
			}

			req := map[string]any{}
			if draw {
				req["draw"] = true
			} else {
				req["player"] = player
				req["wins"] = wins
			}

			var result Effect
			path := fmt.Sprintf("/api/v1/tournaments/%s/rounds/%s/result", args[0], args[1])
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "player", "", "Winning player (name or id)")
	cmd.Flags().IntVar(&wins, "wins", 0, "Games won by the player")
	cmd.Flags().BoolVar(&draw, "draw", false, "Record a drawn game")

	return cmd
}

func newRoundExtendCmd() *cobra.Command {
	var seconds int

	cmd := &cobra.Command{
		Use:   "extend <tournament> <round>",
		Short: "Grant a time extension to a round",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"extension_seconds": seconds}

			var result Effect
			path := fmt.Sprintf("/api/v1/tournaments/%s/rounds/%s/extension", args[0], args[1])
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&seconds, "seconds", 0, "Extension in seconds (required)")
	_ = cmd.MarkFlagRequired("seconds")

	return cmd
}
