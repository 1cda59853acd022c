// Galactic Gazette generation: turns a turn's events into a digest.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// GazetteData holds the raw material for one issue of the gazette.
type GazetteData struct {
	Turn      int
	Realms    []RealmSummary
	Headlines []string // Newest first
	Deaths    []string
	Births    []string
	Incidents []string
}

// RealmSummary is a brief description of a realm for the gazette.
type RealmSummary struct {
	Name       string
	Government string
	Ruler      string
	Leaders    int
	Credits    int
}

// Gazette holds a generated issue.
type Gazette struct {
	GeneratedAt time.Time `json:"generated_at"`
	Turn        int       `json:"turn"`
	Content     string    `json:"content"`
}

const gazetteSystem = `You are the editor of "The Galactic Gazette", read in every star realm.

Write this turn's edition in lively newsreel prose. Lead with successions and deaths, then incidents, then the state of the realms. Keep it under 500 words. Do not break character or reference the game.`

// GenerateGazette writes an issue with the model, falling back to a plain
// text issue when the client is disabled or the call fails.
func GenerateGazette(ctx context.Context, client *Client, data *GazetteData) *Gazette {
	g := &Gazette{GeneratedAt: time.Now(), Turn: data.Turn}
	if !client.Enabled() {
		g.Content = fallbackGazette(data)
		return g
	}
	content, err := client.Complete(ctx, gazetteSystem, buildGazettePrompt(data), 900)
	if err != nil {
		slog.Warn("gazette generation failed", "turn", data.Turn, "error", err)
		g.Content = fallbackGazette(data)
		return g
	}
	g.Content = content
	return g
}

func writeSection(b *strings.Builder, heading string, lines []string, limit int) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", heading)
	for i, l := range lines {
		if i >= limit {
			break
		}
		fmt.Fprintf(b, "- %s\n", l)
	}
	b.WriteString("\n")
}

func buildGazettePrompt(data *GazetteData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write the edition for turn %d.\n\n", data.Turn)

	if len(data.Realms) > 0 {
		b.WriteString("REALMS:\n")
		for _, r := range data.Realms {
			ruler := r.Ruler
			if ruler == "" {
				ruler = "no ruler"
			}
			fmt.Fprintf(&b, "- %s (%s), led by %s, %d leaders, %d credits\n",
				r.Name, r.Government, ruler, r.Leaders, r.Credits)
		}
		b.WriteString("\n")
	}
	writeSection(&b, "HEADLINES", data.Headlines, 5)
	writeSection(&b, "DEATHS", data.Deaths, 5)
	if len(data.Births) > 0 {
		fmt.Fprintf(&b, "BIRTHS: %d new heirs\n\n", len(data.Births))
	}
	writeSection(&b, "INCIDENTS", data.Incidents, 3)
	return b.String()
}

func fallbackGazette(data *GazetteData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "THE GALACTIC GAZETTE, turn %d\n\n", data.Turn)
	if len(data.Headlines) == 0 && len(data.Deaths) == 0 && len(data.Incidents) == 0 {
		b.WriteString("A quiet turn across the stars.\n\n")
	}
	writeSection(&b, "Headlines", data.Headlines, 5)
	writeSection(&b, "Obituaries", data.Deaths, 5)
	writeSection(&b, "Incidents", data.Incidents, 3)
	if len(data.Births) > 0 {
		fmt.Fprintf(&b, "%d new heirs were born.\n\n", len(data.Births))
	}
	for _, r := range data.Realms {
		ruler := r.Ruler
		if ruler == "" {
			ruler = "an empty throne"
		}
		fmt.Fprintf(&b, "%s (%s) is led by %s.\n", r.Name, r.Government, ruler)
	}
	return b.String()
}
