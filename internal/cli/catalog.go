package cli

import (
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog browsing commands",
	}

	cmd.AddCommand(newCatalogCardsCmd())
	cmd.AddCommand(newCatalogStickersCmd())

	return cmd
}

func newCatalogCardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cards",
		Short: "List loaded card definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []CardDefinition
			if err := client.Get("/api/v1/catalog/cards", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(CardDefinitionList(result))
			return nil
		},
	}
}

func newCatalogStickersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stickers",
		Short: "List loaded sticker definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []StickerDefinition
			if err := client.Get("/api/v1/catalog/stickers", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(StickerDefinitionList(result))
			return nil
		},
	}
}
