package cmd

import (
	"github.com/samko5sam/webapps/api"
	"github.com/samko5sam/webapps/models"

	"github.com/spf13/cobra"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Run the item manager",
	Run:   runItems,
}

func init() {
	runCmd.AddCommand(itemsCmd)
}

func runItems(cmd *cobra.Command, args []string) {
	connectDB(&models.Item{})

	r := newEngine()
	api.AddAPI(r.Group("/"), api.AuthToken, api.ItemAPI())
	serve("items", r)
}
