package cmd

import (
	"github.com/samko5sam/webapps/api"
	"github.com/samko5sam/webapps/models"

	"github.com/spf13/cobra"
)

var voteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Run the music voting service",
	Run:   runVote,
}

func init() {
	runCmd.AddCommand(voteCmd)
}

func runVote(cmd *cobra.Command, args []string) {
	connectDB(&models.User{}, &models.Album{}, &models.Song{},
		&models.AlbumVote{}, &models.SongVote{})

	r := newEngine()
	api.AddAPI(r.Group("/"), api.AuthToken, api.VoteAPI())
	serve("vote", r)
}
