package handler

import (
	"encoding/json"
	"fmt"

	"socialelections/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type LedgerHandler struct {
	logger    *zap.Logger
	integrity *service.IntegrityService
}

func NewLedgerHandler(logger *zap.Logger, integrity *service.IntegrityService) *LedgerHandler {
	return &LedgerHandler{
		logger:    logger,
		integrity: integrity,
	}
}

// Check 印出 integrity report (JSON)；有違規且未修復時回傳 error 讓 exit code 非 0
func (handler *LedgerHandler) Check(cmd *cobra.Command, args []string) error {
	repair, err := cmd.Flags().GetBool("repair")
	if err != nil {
		return err
	}

	report, err := handler.integrity.Check(cmd.Context(), repair)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}
	if len(report.Violations) > 0 && !repair {
		return fmt.Errorf("%d violation(s) found, rerun with --repair", len(report.Violations))
	}
	return nil
}
