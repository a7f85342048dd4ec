package handlers

import (
	"encoding/xml"
	"log"
	"net/http"
	"regexp"
	"strings"
)

// twimlResponse is the messaging reply envelope the transport expects.
type twimlResponse struct {
	XMLName xml.Name      `xml:"Response"`
	Message *twimlMessage `xml:"Message,omitempty"`
}

type twimlMessage struct {
	Body  string `xml:"Body"`
	Media string `xml:"Media,omitempty"`
}

var chartRequestRegex = regexp.MustCompile(`(?i)\b(chart|graph|plot|breakdown)\b`)

// Whatsapp handles POST /whatsapp: one inbound message in, one TwiML reply
// out. Every code path responds with a well-formed envelope.
func (h *Handler) Whatsapp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondTwiML(w, "Could not read your message. Please try again.", "")
		return
	}

	body := strings.TrimSpace(r.PostFormValue("Body"))
	owner := normalizeSender(r.PostFormValue("From"))
	if owner == "" {
		respondTwiML(w, "Could not identify the sender of this message.", "")
		return
	}

	if chartRequestRegex.MatchString(body) {
		h.replyWithChart(w, owner)
		return
	}

	reply := h.agent.Process(r.Context(), owner, body)
	respondTwiML(w, reply, "")
}

func (h *Handler) replyWithChart(w http.ResponseWriter, owner string) {
	totals, err := h.repo.CategoryTotals(owner)
	if err != nil {
		log.Printf("chart query failed: %v", err)
		respondTwiML(w, "Could not build your chart right now. Please try again later.", "")
		return
	}

	filename, err := h.charts.RenderCategoryBreakdown(totals)
	if err != nil {
		log.Printf("chart rendering failed: %v", err)
		respondTwiML(w, "You have no recorded expenses to chart yet.", "")
		return
	}

	respondTwiML(w, "Here is your spending by category.", h.mediaBaseURL+"/"+filename)
}

// normalizeSender strips the transport prefix from the sender identifier,
// e.g. "whatsapp:+15551234567" becomes "+15551234567".
func normalizeSender(from string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(from), "whatsapp:"))
}

func respondTwiML(w http.ResponseWriter, body, mediaURL string) {
	resp := twimlResponse{
		Message: &twimlMessage{
			Body:  body,
			Media: mediaURL,
		},
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode TwiML response: %v", err)
	}
}
