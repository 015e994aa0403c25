package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"socialelections/internal/service"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type RosterHandler struct {
	logger *zap.Logger
	roster *service.RosterService
}

func NewRosterHandler(logger *zap.Logger, roster *service.RosterService) *RosterHandler {
	return &RosterHandler{
		logger: logger,
		roster: roster,
	}
}

func (handler *RosterHandler) Export(cmd *cobra.Command, args []string) error {
	unitID, err := unitFlag(cmd)
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")

	buf, filename, err := handler.roster.Export(cmd.Context(), unitID)
	if err != nil {
		return err
	}
	if out == "" {
		out = filename
	} else if info, statErr := os.Stat(out); statErr == nil && info.IsDir() {
		out = filepath.Join(out, filename)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	cmd.Printf("roster written to %s\n", out)
	return nil
}

func (handler *RosterHandler) Import(cmd *cobra.Command, args []string) error {
	unitID, err := unitFlag(cmd)
	if err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("file")

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := handler.roster.Import(cmd.Context(), unitID, f)
	if err != nil {
		return err
	}
	cmd.Printf("rows=%d matched=%d\n", result.Rows, result.Matched)
	for category, n := range result.Categories {
		cmd.Printf("  %s: %d\n", category, n)
	}
	if len(result.Unmatched) > 0 {
		handler.logger.Warn("roster import left rows unmatched", zap.Strings("emails", result.Unmatched))
		cmd.Printf("unmatched: %s\n", strings.Join(result.Unmatched, ", "))
	}
	return nil
}

func unitFlag(cmd *cobra.Command) (primitive.ObjectID, error) {
	raw, _ := cmd.Flags().GetString("unit")
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid --unit %q", raw)
	}
	return id, nil
}
