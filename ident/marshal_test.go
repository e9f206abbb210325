package ident

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type questTag struct{}
type QuestID = ID[questTag]

func TestID_JSONRoundTrip(t *testing.T) {
	id := New[questTag]("main_quest")

	data, err := json.Marshal(id)
	require.NoError(t, err)

	// Content, never identity.
	assert.Equal(t, `"main_quest"`, string(data))

	var back QuestID
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, id, back)
	assert.Equal(t, "main_quest", back.String())
}

func TestID_JSONInStruct(t *testing.T) {
	type SaveGame struct {
		Active QuestID   `json:"active"`
		Done   []QuestID `json:"done"`
	}

	in := SaveGame{
		Active: New[questTag]("main_quest"),
		Done:   []QuestID{New[questTag]("tutorial"), New[questTag]("side_quest")},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"active":"main_quest","done":["tutorial","side_quest"]}`, string(data))

	var out SaveGame
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestID_UnmarshalReinterns(t *testing.T) {
	// Decoding text that was never interned mints the entry fresh, exactly
	// as if the text had arrived from another process run.
	var id QuestID
	require.NoError(t, id.UnmarshalText([]byte("imported_quest")))

	assert.Equal(t, "imported_quest", id.String())
	assert.Equal(t, New[questTag]("imported_quest"), id)
}

func TestID_YAMLRoundTrip(t *testing.T) {
	type Config struct {
		Quest QuestID `yaml:"quest"`
	}

	in := Config{Quest: New[questTag]("main_quest")}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "quest: main_quest\n", string(data))

	var out Config
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestID_YAMLRejectsNonScalar(t *testing.T) {
	var id QuestID
	err := yaml.Unmarshal([]byte("[1, 2]"), &id)
	assert.Error(t, err)
}

func TestID_MarshalZero(t *testing.T) {
	var id QuestID

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))
}
