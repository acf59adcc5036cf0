package api

import (
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
)

// diagnose accepts the two CSV exports as multipart form files
// ("ledger" and "trades") and responds with the full report. Optional
// form fields override pipeline tunables per request:
//
//	symbol    - benchmark index symbol
//	threshold - cash-flow filter threshold, e.g. "0.3"
func (m ApiHandler) diagnose(c *gin.Context) {
	ledgerFile, err := c.FormFile("ledger")
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("missing ledger file: %w", err), c, 400)
		return
	}
	tradesFile, err := c.FormFile("trades")
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("missing trades file: %w", err), c, 400)
		return
	}

	service := m.DiagnosisService
	if symbol := c.PostForm("symbol"); symbol != "" {
		service.Config.BenchmarkSymbol = symbol
	}
	if raw := c.PostForm("threshold"); raw != "" {
		threshold, err := strconv.ParseFloat(raw, 64)
		if err != nil || threshold <= 0 {
			returnErrorJsonCode(fmt.Errorf("invalid threshold %q", raw), c, 400)
			return
		}
		service.Config.CashFlowThreshold = threshold
	}

	ledger, err := openUpload(ledgerFile)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer ledger.Close()

	trades, err := openUpload(tradesFile)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer trades.Close()

	report, err := service.Run(c.Request.Context(), ledger, trades)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, report)
}

func openUpload(header *multipart.FileHeader) (multipart.File, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", header.Filename, err)
	}
	return f, nil
}
