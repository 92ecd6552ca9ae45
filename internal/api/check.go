package api

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/hijri/internal"
	"github.com/dmitrymomot/hijri/pkg/health"
)

// ConverterCheck is a readiness check that converts a fixed date and
// verifies the result and the rendering of its month name.
func ConverterCheck(conv *internal.Converter) health.CheckFunc {
	ref := time.Date(2024, time.April, 9, 12, 0, 0, 0, time.UTC)
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		d := conv.ConvertWithAdjustment(ref, 0, conv.DefaultLocale())
		if d.String() != "1445-10-01" {
			return fmt.Errorf("api: converter self-check: got %s, want 1445-10-01", d.String())
		}
		if d.MonthName() == "" {
			return fmt.Errorf("api: converter self-check: empty month name for %q", d.Locale())
		}
		return nil
	}
}
