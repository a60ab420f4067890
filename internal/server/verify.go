package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"

	"go.uber.org/zap"

	"github.com/FACorreiaa/go-nextapp/internal/app/audit"
	"github.com/FACorreiaa/go-nextapp/internal/app/content"
	"github.com/FACorreiaa/go-nextapp/internal/app/navbar"
)

// VerifyPages renders every registered page with the mobile menu closed and
// open and audits the markup. It is run once before the server starts
// listening.
func VerifyPages(handler http.Handler, logger *zap.Logger) error {
	var findings []audit.Finding
	for _, route := range content.Routes() {
		for _, target := range []string{
			string(route),
			fmt.Sprintf("%s?%s=1", route, navbar.TogglesParam),
		} {
			req := httptest.NewRequest(http.MethodGet, target, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				return fmt.Errorf("verify %s: unexpected status %d", target, w.Code)
			}
			found, err := audit.Inspect(target, w.Body)
			if err != nil {
				return err
			}
			findings = append(findings, found...)
		}
	}
	if err := audit.Error(findings); err != nil {
		return err
	}
	logger.Info("Page markup verified", zap.Int("pages", len(content.Routes())))
	return nil
}
