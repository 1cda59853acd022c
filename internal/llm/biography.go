// Leader story generation via Haiku.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// BiographyContext holds what the chronicler knows about a leader.
type BiographyContext struct {
	Name       string
	Title      string
	Race       string
	Age        int
	Job        string
	Realm      string
	Government string
	Attitude   string
	Perks      []string
	Biography  string // Plain biography the story is built on
}

func (bc BiographyContext) details() []string {
	details := []string{
		fmt.Sprintf("Name: %s", bc.Name),
		fmt.Sprintf("Race: %s", bc.Race),
		fmt.Sprintf("Age: %d star years", bc.Age),
		fmt.Sprintf("Position: %s", bc.Job),
		fmt.Sprintf("Realm: %s (%s)", bc.Realm, bc.Government),
	}
	if bc.Title != "" {
		details = append(details, fmt.Sprintf("Title: %s", bc.Title))
	}
	if bc.Attitude != "" {
		details = append(details, fmt.Sprintf("Attitude: %s", bc.Attitude))
	}
	if len(bc.Perks) > 0 {
		details = append(details, "Traits: "+strings.Join(bc.Perks, ", "))
	}
	if bc.Biography != "" {
		details = append(details, "Record: "+bc.Biography)
	}
	return details
}

const biographySystem = `You are the court chronicler of a galaxy of rival star realms.

Write a brief biography (120-200 words) of this leader in the voice of a galactic historian. Keep every fact from the record, add colour but no new deeds. Do not break character or reference the game.`

// GenerateBiography asks the model for a story about a leader.
func GenerateBiography(ctx context.Context, client *Client, bc BiographyContext) (string, error) {
	if !client.Enabled() {
		return "", ErrDisabled
	}
	prompt := "Write a biography for this leader:\n\n" + strings.Join(bc.details(), "\n")
	return client.Complete(ctx, biographySystem, prompt, 400)
}
