package news

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAddAndTrim(t *testing.T) {
	var h History
	first := h.Add(1, 0, CategoryLeader, "first")
	assert.NotEqual(t, uuid.Nil, first.ID)
	for i := 0; i < maxHistory+10; i++ {
		h.Add(2, 0, CategoryLeader, "more")
	}
	assert.Equal(t, maxHistory, h.Len())
	assert.Equal(t, "more", h.Events()[0].Description)
	assert.Len(t, h.Since(3), 0)
}

func TestCorpPublish(t *testing.T) {
	var c Corp
	head, body := LeaderKilled("Emperor Kael Voss", "Terran Empire", "execution by Spork Nest")
	it := c.Publish(5, head, body)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, it, c.Items()[0])
	assert.Contains(t, it.Body, "execution by Spork Nest")

	head, body = LeaderImprisoned("Kira", "Terran Empire", "Spork Nest", 4)
	assert.Equal(t, "Kira imprisoned!", head)
	assert.Contains(t, body, "4 star years")
}
