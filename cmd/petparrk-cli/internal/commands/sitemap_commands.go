package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"petparrk/internal/sitemap"
)

// DefaultSitemapPath is where the sitemap is written when --output is not set.
const DefaultSitemapPath = "public/sitemap.xml"

// SitemapCommandHandler regenerates the static sitemap file.
type SitemapCommandHandler struct {
	open EnvOpener
}

// NewSitemapCommandHandler creates a SitemapCommandHandler.
func NewSitemapCommandHandler(open EnvOpener) *SitemapCommandHandler {
	return &SitemapCommandHandler{open: open}
}

// GenerateSitemapCmd writes the sitemap for every active vet to --output.
func (h *SitemapCommandHandler) GenerateSitemapCmd(cmd *cobra.Command, _ []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("invalid output flag: %w", err)
	}

	env, closeFn, err := h.open(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	doc, count, err := sitemap.NewGenerator(env.Vets, env.Config.Site.BaseURL).Generate(cmd.Context())
	if err != nil {
		env.Log.Error("sitemap_failed", zap.Error(err))
		return fmt.Errorf("generate sitemap: %w", err)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, doc, 0o644); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}

	env.Log.Info("sitemap_written", zap.String("path", output), zap.Int("vets", count))
	return nil
}

// InitSitemapCommand registers the sitemap command on rootCmd.
func InitSitemapCommand(rootCmd *cobra.Command, open EnvOpener) {
	handler := NewSitemapCommandHandler(open)

	sitemapCmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Generate sitemap.xml from the active vets",
		Args:  cobra.NoArgs,
		RunE:  handler.GenerateSitemapCmd,
	}
	sitemapCmd.Flags().StringP("output", "o", DefaultSitemapPath, "Path of the generated sitemap")
	rootCmd.AddCommand(sitemapCmd)
}
