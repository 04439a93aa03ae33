package cli

import (
	"github.com/spf13/cobra"

	"github.com/postersmith/postersmith/pkg/catalog"
	"github.com/postersmith/postersmith/pkg/errors"
)

// fontsCommand creates the fonts command, which checks that every font the
// catalog references is known to the external tool.
func (c *CLI) fontsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "Check that the catalog's fonts are installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			tool := newTool(cfg)

			installed, err := tool.ListFonts(cmd.Context())
			if err != nil {
				return errors.Wrap(errors.ErrCodeToolMissing, err,
					"list fonts via %s", tool.Binary())
			}
			known := make(map[string]bool, len(installed))
			for _, f := range installed {
				known[f] = true
			}

			// Each category may override the default font
			needed := make(map[string]bool)
			for _, cat := range catalog.All() {
				needed[cat.Font] = true
			}

			missing := 0
			for font := range needed {
				if known[font] {
					printSuccess("%s", font)
				} else {
					printError("%s (not installed)", font)
					missing++
				}
			}

			if missing > 0 {
				return errors.New(errors.ErrCodeFontNotFound,
					"%d required font(s) missing", missing)
			}
			printDetail("%d fonts checked, %d installed system-wide", len(needed), len(installed))
			return nil
		},
	}
}
