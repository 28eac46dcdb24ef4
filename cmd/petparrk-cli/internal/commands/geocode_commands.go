package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"petparrk/internal/geocode"
)

// GeocodeCommandHandler fills in vet coordinates from their street addresses.
type GeocodeCommandHandler struct {
	open EnvOpener
}

// NewGeocodeCommandHandler creates a GeocodeCommandHandler.
func NewGeocodeCommandHandler(open EnvOpener) *GeocodeCommandHandler {
	return &GeocodeCommandHandler{open: open}
}

// GeocodeVetsCmd looks up every active vet's address, one request at a time.
func (h *GeocodeCommandHandler) GeocodeVetsCmd(cmd *cobra.Command, _ []string) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("invalid dry-run flag: %w", err)
	}
	onlyMissing, err := cmd.Flags().GetBool("only-missing")
	if err != nil {
		return fmt.Errorf("invalid only-missing flag: %w", err)
	}

	env, closeFn, err := h.open(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	if err := env.Config.Geocoder.Validate(); err != nil {
		return err
	}

	runner := geocode.NewRunner(env.Vets, env.Geocoder, env.Log, env.Config.Geocoder.Delay())
	sum, err := runner.Run(cmd.Context(), geocode.Options{DryRun: dryRun, OnlyMissing: onlyMissing})
	if err != nil {
		return fmt.Errorf("geocode vets: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "geocoded %d of %d vets (skipped %d, not found %d, failed %d)\n",
		sum.Found, sum.Total, sum.Skipped, sum.NotFound, sum.Failed)
	return nil
}

// InitGeocodeCommand registers the geocode command on rootCmd.
func InitGeocodeCommand(rootCmd *cobra.Command, open EnvOpener) {
	handler := NewGeocodeCommandHandler(open)

	geocodeCmd := &cobra.Command{
		Use:   "geocode",
		Short: "Geocode vet addresses with Nominatim",
		Args:  cobra.NoArgs,
		RunE:  handler.GeocodeVetsCmd,
	}
	geocodeCmd.Flags().Bool("dry-run", false, "Look addresses up without saving coordinates")
	geocodeCmd.Flags().Bool("only-missing", false, "Skip vets that already have coordinates")
	rootCmd.AddCommand(geocodeCmd)
}
