// internal/models/activity_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivity_HasParticipant(t *testing.T) {
	activity := &Activity{
		Participants: []string{"alex@mergington.edu", "sarah@mergington.edu"},
	}

	assert.True(t, activity.HasParticipant("alex@mergington.edu"))
	assert.False(t, activity.HasParticipant("nobody@mergington.edu"))
	assert.False(t, activity.HasParticipant(""))
}

func TestActivity_Clone_DoesNotShareParticipants(t *testing.T) {
	original := &Activity{
		Description:     "Chess",
		Schedule:        "Fridays",
		MaxParticipants: 12,
		Participants:    []string{"a@mergington.edu"},
	}

	clone := original.Clone()
	clone.Participants[0] = "b@mergington.edu"
	clone.Participants = append(clone.Participants, "c@mergington.edu")

	assert.Equal(t, []string{"a@mergington.edu"}, original.Participants)
}

func TestActivity_JSONWireNames(t *testing.T) {
	activity := Activity{
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu"},
	}

	data, err := json.Marshal(activity)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "description")
	assert.Contains(t, raw, "schedule")
	assert.Contains(t, raw, "max_participants")
	assert.Contains(t, raw, "participants")
}
