package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ledgerbot/internal/charts"
	"ledgerbot/internal/database"
	"ledgerbot/internal/storage"
)

type fakeProcessor struct {
	owners []string
	inputs []string
	reply  string
}

func (f *fakeProcessor) Process(ctx context.Context, ownerID, input string) string {
	f.owners = append(f.owners, ownerID)
	f.inputs = append(f.inputs, input)
	return f.reply
}

func postWebhook(t *testing.T, h *Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Whatsapp(rec, req)
	return rec
}

func newTestHandler(t *testing.T, agent Processor) (*Handler, *database.Repository) {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := database.NewRepository(db)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	return New(repo, agent, charts.NewRenderer(store), "http://localhost:8080/media"), repo
}

func TestWhatsappReply(t *testing.T) {
	agent := &fakeProcessor{reply: "Recorded 500 under food."}
	h, _ := newTestHandler(t, agent)

	rec := postWebhook(t, h, url.Values{
		"Body": {" 500 for lunch in food "},
		"From": {"whatsapp:+15551234567"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "<Body>Recorded 500 under food.</Body>")
	require.NotContains(t, rec.Body.String(), "<Media>")

	require.Equal(t, []string{"+15551234567"}, agent.owners, "sender must be normalized")
	require.Equal(t, []string{"500 for lunch in food"}, agent.inputs, "body must be trimmed")
}

func TestWhatsappMissingSender(t *testing.T) {
	agent := &fakeProcessor{reply: "should not be called"}
	h, _ := newTestHandler(t, agent)

	rec := postWebhook(t, h, url.Values{"Body": {"hello"}})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Could not identify the sender")
	require.Empty(t, agent.owners, "interpreter must not run without a sender")
}

func TestWhatsappChartWithNoData(t *testing.T) {
	agent := &fakeProcessor{reply: "should not be called"}
	h, _ := newTestHandler(t, agent)

	rec := postWebhook(t, h, url.Values{
		"Body": {"show me a chart of my spending"},
		"From": {"whatsapp:+15551234567"},
	})

	require.Contains(t, rec.Body.String(), "no recorded expenses to chart")
	require.Empty(t, agent.owners)
}

func TestWhatsappChartWithData(t *testing.T) {
	agent := &fakeProcessor{reply: "should not be called"}
	h, repo := newTestHandler(t, agent)

	_, err := repo.CreateExpense("+15551234567", 500, "food", "lunch", "")
	require.NoError(t, err)
	_, err = repo.CreateExpense("+15551234567", 120, "transport", "taxi", "")
	require.NoError(t, err)

	rec := postWebhook(t, h, url.Values{
		"Body": {"spending breakdown please"},
		"From": {"whatsapp:+15551234567"},
	})

	body := rec.Body.String()
	require.Contains(t, body, "spending by category")
	require.Contains(t, body, "<Media>http://localhost:8080/media/")
	require.Contains(t, body, ".png</Media>")
}

func TestNormalizeSender(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"whatsapp:+15551234567", "+15551234567"},
		{"+15551234567", "+15551234567"},
		{"  whatsapp:+1555  ", "+1555"},
		{"", ""},
		{"whatsapp:", ""},
	}

	for _, tc := range cases {
		if got := normalizeSender(tc.input); got != tc.expected {
			t.Fatalf("normalizeSender(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}
