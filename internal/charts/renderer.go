package charts

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"ledgerbot/internal/models"
	"ledgerbot/internal/storage"
)

// ErrNoData means the owner has nothing to chart yet.
var ErrNoData = errors.New("no expense data to chart")

type Renderer struct {
	store *storage.LocalStorage
}

func NewRenderer(store *storage.LocalStorage) *Renderer {
	return &Renderer{store: store}
}

// RenderCategoryBreakdown draws a bar chart of per-category spending, saves
// it as a PNG and returns the stored filename.
func (r *Renderer) RenderCategoryBreakdown(totals []models.CategoryTotal) (string, error) {
	if len(totals) == 0 {
		return "", ErrNoData
	}

	bars := make([]chart.Value, 0, len(totals))
	for _, ct := range totals {
		bars = append(bars, chart.Value{
			Label: ct.Category,
			Value: ct.Amount,
		})
	}

	bc := chart.BarChart{
		Title:    "Spending by category",
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}

	filename, err := r.store.Save(".png", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to store chart: %w", err)
	}
	return filename, nil
}
