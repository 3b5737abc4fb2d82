package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/campushub/resource-gateway/internal/core/service"
	"github.com/campushub/resource-gateway/internal/infrastructure/backend"
	"github.com/campushub/resource-gateway/pkg/logger"
)

const defaultBackendTimeout = 30 * time.Second

var (
	flagServer   string
	flagLogLevel string
	flagJSON     bool

	log          zerolog.Logger
	authSvc      *service.AuthService
	directorySvc *service.DirectoryService
	reviewSvc    *service.ReviewService
)

// defaultServer returns the backend base URL, checking RESOURCECTL_SERVER first.
func defaultServer() string {
	if s := os.Getenv("RESOURCECTL_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8000/api"
}

// NewRootCmd creates the root cobra command for resourcectl.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "resourcectl",
		Short: "resourcectl manages the campus resource directory",
		Long:  "resourcectl browses the community resource directory and drives the admin review workflow from the terminal.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logger.Init(logger.Options{Level: flagLogLevel, Pretty: true, Output: cmd.ErrOrStderr()})

			client := backend.New(flagServer, defaultBackendTimeout, log)
			authAPI := backend.NewAuthClient(client)
			resourceAPI := backend.NewResourceClient(client)
			adminAPI := backend.NewAdminClient(client)

			authSvc = service.NewAuthService(authAPI, log)
			directorySvc = service.NewDirectoryService(resourceAPI, log)
			reviewSvc = service.NewReviewService(resourceAPI, adminAPI, log)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "Backend API base URL (or RESOURCECTL_SERVER env)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "Emit JSON instead of tables")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newListCmd(),
		newSuggestCmd(),
		newReviewCmd(),
		newResourceCmd(),
		newUsersCmd(),
	)

	return root
}
