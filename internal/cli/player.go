package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "player",
		Aliases: []string{"p"},
		Short:   "Player management commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerDropCmd())
	cmd.AddCommand(newPlayerCheckInCmd())
	cmd.AddCommand(newPlayerReadyCmd())
	cmd.AddCommand(newPlayerUnreadyCmd())
	cmd.AddCommand(newPlayerConfirmCmd())
	cmd.AddCommand(newPlayerByeCmd())
	cmd.AddCommand(newPlayerGamerTagCmd())
	cmd.AddCommand(newPlayerDeckCmd())
	cmd.AddCommand(newPlayerActiveRoundCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <tournament> <name>",
		Short: "Register a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": args[1]}

			var result Player
			path := fmt.Sprintf("/api/v1/tournaments/%s/players", args[0])
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <tournament>",
		Short: "List players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerList
			path := fmt.Sprintf("/api/v1/tournaments/%s/players", args[0])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <tournament> <player>",
		Short: "Get player details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			path := fmt.Sprintf("/api/v1/tournaments/%s/players/%s", args[0], args[1])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerDropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drop <tournament> <player>",
		Short: "Drop a player from the tournament",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/tournaments/%s/players/%s", args[0], args[1])
			if err := client.Delete(path); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Dropped %s", args[1]))
			return nil
		},
	}
}

// playerActionCmd builds a command that POSTs to a per-player action endpoint
func playerActionCmd(use, short, action string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <tournament> <player>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Effect
			path := fmt.Sprintf("/api/v1/tournaments/%s/players/%s/%s", args[0], args[1], action)
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerCheckInCmd() *cobra.Command {
	return playerActionCmd("check-in", "Check a player in", "check-in")
}

func newPlayerReadyCmd() *cobra.Command {
	return playerActionCmd("ready", "Mark a player ready for their next round", "ready")
}

func newPlayerUnreadyCmd() *cobra.Command {
	return playerActionCmd("unready", "Withdraw a player's readiness", "unready")
}

func newPlayerConfirmCmd() *cobra.Command {
	return playerActionCmd("confirm", "Confirm the recorded result of the player's active round", "confirm")
}

func newPlayerByeCmd() *cobra.Command {
	return playerActionCmd("bye", "Award a bye to a player", "bye")
}

func newPlayerGamerTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gamer-tag <tournament> <player> <tag>",
		Short: "Set a player's gamer tag",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"tag": args[2]}

			var result Effect
			path := fmt.Sprintf("/api/v1/tournaments/%s/players/%s/gamer-tag", args[0], args[1])
			if err := client.Put(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerDeckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Deck registration commands",
	}

	var cards []string

	addCmd := &cobra.Command{
		Use:   "add <tournament> <player> <name>",
		Short: "Register a deck",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck := make(map[string]int, len(cards))
			for _, entry := range cards {
				card, countStr, ok := strings.Cut(entry, "=")
				if !ok {
					return fmt.Errorf("invalid card %q: expected name=count", entry)
				}
				count, err := strconv.Atoi(countStr)
				if err != nil {
					return fmt.Errorf("invalid card count in %q", entry)
				}
				deck[card] = count
			}

			req := map[string]any{"name": args[2], "cards": deck}

			var result Effect
			path := fmt.Sprintf("/api/v1/tournaments/%s/players/%s/decks", args[0], args[1])
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
	addCmd.Flags().StringArrayVar(&cards, "card", nil, "Card as name=count (repeatable)")

	removeCmd := &cobra.Command{
		Use:   "remove <tournament> <player> <name>",
		Short: "Remove a registered deck",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/tournaments/%s/players/%s/decks/%s", args[0], args[1], args[2])
			if err := client.Delete(path); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Removed deck %s", args[2]))
			return nil
		},
	}

	cmd.AddCommand(addCmd)
	cmd.AddCommand(removeCmd)

	return cmd
}

func newPlayerActiveRoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "active-round <tournament> <player>",
		Short: "Show the player's current round",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Round
			path := fmt.Sprintf("/api/v1/tournaments/%s/players/%s/active-round", args[0], args[1])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
