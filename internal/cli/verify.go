package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/postersmith/postersmith/pkg/checksum"
	"github.com/postersmith/postersmith/pkg/errors"
)

// verifyCommand creates the verify command, which checks the bundled
// background assets against the checksum manifest before a batch run.
func (c *CLI) verifyCommand() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify bundled assets against the checksum manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			path := manifestPath
			if path == "" {
				path = filepath.Join(cfg.Paths.Assets, "checksums.txt")
			}

			manifest, err := checksum.LoadManifest(path)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			logger.Debug("loaded checksum manifest", "path", path, "entries", len(manifest))

			sp := newSpinnerWithContext(cmd.Context(), "Verifying assets...")
			sp.Start()
			mismatches, err := checksum.VerifyDir(cfg.Paths.Assets, manifest)
			if err != nil {
				sp.StopWithError("Verification failed")
				return err
			}

			if len(mismatches) == 0 {
				sp.StopWithSuccess("All assets verified")
				printDetail("%d assets checked in %s", len(manifest), cfg.Paths.Assets)
				return nil
			}

			sp.StopWithError("Asset verification failed")
			for _, m := range mismatches {
				printDetail("%s", m)
			}
			return errors.New(errors.ErrCodeChecksumInvalid,
				"%d of %d assets failed verification", len(mismatches), len(manifest))
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "checksum manifest path (default: <assets>/checksums.txt)")

	return cmd
}
