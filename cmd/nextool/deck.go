package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeckCmd(holder *appHolder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Manage Deck boards",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "boards",
		Short: "List boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			boards, err := client.ListBoards()
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Boards(boards))
			return nil
		},
	})

	var boardColor string
	createBoardCmd := &cobra.Command{
		Use:   "create-board <title>",
		Short: "Create a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			board, err := client.CreateBoard(args[0], boardColor)
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Success(fmt.Sprintf("created board %d: %s", board.ID, board.Title)))
			return nil
		},
	}
	createBoardCmd.Flags().StringVar(&boardColor, "color", "000000", "hex color without #")
	cmd.AddCommand(createBoardCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "stacks <board-id>",
		Short: "List stacks in a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			boardID, err := parseID(args[0])
			if err != nil {
				return err
			}
			stacks, err := client.ListStacks(boardID)
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Stacks(fmt.Sprintf("board %d", boardID), stacks))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cards <board-id> <stack-id>",
		Short: "List cards in a stack",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			boardID, err := parseID(args[0])
			if err != nil {
				return err
			}
			stackID, err := parseID(args[1])
			if err != nil {
				return err
			}
			cards, err := client.ListCards(boardID, stackID)
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Cards(fmt.Sprintf("stack %d", stackID), cards))
			return nil
		},
	})

	var cardDescription, cardDue string
	createCardCmd := &cobra.Command{
		Use:   "create-card <board-id> <stack-id> <title>",
		Short: "Create a card",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			boardID, err := parseID(args[0])
			if err != nil {
				return err
			}
			stackID, err := parseID(args[1])
			if err != nil {
				return err
			}
			card, err := client.CreateCard(boardID, stackID, args[2], cardDescription, 0, cardDue)
			if err != nil {
				return err
			}
			fmt.Print(app.renderer.Success(fmt.Sprintf("created card %d: %s", card.ID, card.Title)))
			return nil
		},
	}
	createCardCmd.Flags().StringVarP(&cardDescription, "description", "d", "", "card description")
	createCardCmd.Flags().StringVar(&cardDue, "due", "", "due date, ISO-8601")
	cmd.AddCommand(createCardCmd)

	var moveOrder int
	var moveTarget int64
	moveCardCmd := &cobra.Command{
		Use:   "move-card <board-id> <stack-id> <card-id>",
		Short: "Reorder a card, optionally into another stack",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			boardID, err := parseID(args[0])
			if err != nil {
				return err
			}
			stackID, err := parseID(args[1])
			if err != nil {
				return err
			}
			cardID, err := parseID(args[2])
			if err != nil {
				return err
			}
			if err := client.ReorderCard(boardID, stackID, cardID, moveOrder, moveTarget); err != nil {
				return err
			}
			fmt.Print(app.renderer.Success(fmt.Sprintf("reordered card %d", cardID)))
			return nil
		},
	}
	moveCardCmd.Flags().IntVar(&moveOrder, "order", 0, "new position")
	moveCardCmd.Flags().Int64Var(&moveTarget, "to-stack", 0, "destination stack id")
	cmd.AddCommand(moveCardCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete-card <board-id> <stack-id> <card-id>",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, client, err := holder.getWithClient()
			if err != nil {
				return err
			}
			boardID, err := parseID(args[0])
			if err != nil {
				return err
			}
			stackID, err := parseID(args[1])
			if err != nil {
				return err
			}
			cardID, err := parseID(args[2])
			if err != nil {
				return err
			}
			if err := client.DeleteCard(boardID, stackID, cardID); err != nil {
				return err
			}
			fmt.Print(app.renderer.Success(fmt.Sprintf("deleted card %d", cardID)))
			return nil
		},
	})

	return cmd
}
