package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionDrawCmd())
	cmd.AddCommand(newSessionDiscardCmd())
	cmd.AddCommand(newSessionDiscardDrawCmd())
	cmd.AddCommand(newSessionRecycleCmd())
	cmd.AddCommand(newSessionPlayCmd())
	cmd.AddCommand(newSessionStickerCmd())
	cmd.AddCommand(newSessionLimitCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	var handLimit int

	cmd := &cobra.Command{
		Use:   "create <card-id>[,<card-id>...]",
		Short: "Create a session from a decklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decklist := strings.Split(args[0], ",")

			var result SessionState
			body := map[string]any{
				"decklist":   decklist,
				"hand_limit": handLimit,
			}
			if err := client.Post("/api/v1/sessions", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&handLimit, "hand-limit", 5, "Maximum hand size")
	return cmd
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <session-id>",
		Short: "Show session state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SessionState
			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionDrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw <session-id>",
		Short: "Draw cards up to the hand limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DrawResult
			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/draw", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionDiscardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard <session-id> [hand-index]",
		Short: "Discard the whole hand, or one card by hand index",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/sessions/%s/discard", args[0])
			if len(args) == 2 {
				if _, err := strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("hand index must be an integer: %s", args[1])
				}
				path = fmt.Sprintf("/api/v1/sessions/%s/hand/%s/discard", args[0], args[1])
			}
			if err := client.Post(path, nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("discarded")
			return nil
		},
	}
}

func newSessionDiscardDrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard-draw <session-id>",
		Short: "Discard the hand and refill from the draw pile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DrawResult
			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/discard-draw", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionRecycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recycle <session-id>",
		Short: "Shuffle the discard pile back into the draw pile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/recycle", args[0]), nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("recycled")
			return nil
		},
	}
}

func newSessionPlayCmd() *cobra.Command {
	var byInstance bool

	cmd := &cobra.Command{
		Use:   "play <session-id> <hand-index|instance-id>",
		Short: "Play a card from hand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if byInstance {
				path = fmt.Sprintf("/api/v1/sessions/%s/cards/%s/play", args[0], args[1])
			} else {
				if _, err := strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("hand index must be an integer: %s", args[1])
				}
				path = fmt.Sprintf("/api/v1/sessions/%s/hand/%s/play", args[0], args[1])
			}

			var result Card
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&byInstance, "by-instance", false, "Address the card by instance id instead of hand index")
	return cmd
}

func newSessionStickerCmd() *cobra.Command {
	var slotIndex int

	cmd := &cobra.Command{
		Use:   "sticker <session-id> <instance-id> <sticker-id>",
		Short: "Apply a sticker to a slot of a hand card",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"sticker_id": args[2],
				"slot_index": slotIndex,
			}
			path := fmt.Sprintf("/api/v1/sessions/%s/cards/%s/stickers", args[0], args[1])
			if err := client.Post(path, body, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("sticker applied")
			return nil
		},
	}

	cmd.Flags().IntVar(&slotIndex, "slot", 0, "Slot index to apply the sticker to")
	return cmd
}

func newSessionLimitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "limit <session-id> <hand-limit>",
		Short: "Update the hand limit for future draws",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("hand limit must be an integer: %s", args[1])
			}

			body := map[string]any{"hand_limit": limit}
			if err := client.Put(fmt.Sprintf("/api/v1/sessions/%s/hand-limit", args[0]), body, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("hand limit updated")
			return nil
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <session-id>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/sessions/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("session deleted")
			return nil
		},
	}
}
