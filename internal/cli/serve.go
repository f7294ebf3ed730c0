package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fundomain/internal/server"
	"github.com/matzehuels/fundomain/pkg/cache"
	"github.com/matzehuels/fundomain/pkg/pipeline"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		cacheSize int
		cacheTTL  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered domains over HTTP",
		Long: `Start a preview server that renders domains on request:

  GET /healthz
  GET /cosets/gamma0(11)
  GET /domain/gamma0(11).svg?choice=distance&labels=true

The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			var opts []server.Option
			if cacheSize > 0 {
				opts = append(opts, server.WithCache(cache.NewMemoryCache(cacheSize), cacheTTL))
			}
			srv := server.New(pipeline.NewRunner(logger), logger, opts...)
			printInfo("serving on http://%s", addr)
			if cacheSize > 0 {
				printDetail("caching up to %d artifacts for %s", cacheSize, cacheTTL)
			}
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().IntVar(&cacheSize, "cache-size", cache.DefaultMaxEntries, "rendered artifacts kept in memory (0 disables)")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 10*time.Minute, "how long a cached artifact stays valid")
	return cmd
}
