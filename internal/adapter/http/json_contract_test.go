package httpadapter

import (
	"encoding/json"
	"testing"
	"time"

	"orrery/internal/app/action"
	"orrery/internal/app/observe"
	"orrery/internal/app/reach"
	"orrery/internal/app/rotation"
	"orrery/internal/app/status"
	"orrery/internal/domain/board"
	"orrery/internal/domain/movement"
)

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	probe := board.Probe{
		ID:       "p1",
		Owner:    "blue",
		Position: board.NativePosition{Ring: board.RingLevel1, Sector: 3},
	}
	address := board.Address{Ring: board.RingLevel1, Sector: 4}
	event := board.DomainEvent{
		ID:         "e1",
		Type:       board.EventProbeMoved,
		OccurredAt: now,
		Payload:    map[string]any{"cost": 2},
	}
	outcome := board.RotationOutcome{
		Level:             1,
		New:               board.RotationState{Angle1: 315},
		NextRotationLevel: 2,
		Shifts:            []board.ProbeShift{{ProbeID: "p1"}},
	}

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name: "observe",
			payload: observe.Response{
				Probe:    probe,
				Address:  address,
				Adjacent: []board.Cell{},
				Objects:  []observe.ObservedObject{},
			},
			want:    []string{"probe", "rotation", "address", "cell", "adjacent", "objects"},
			notWant: []string{"Probe", "Address", "Cell"},
		},
		{
			name:    "move",
			payload: action.Response{Probe: probe, From: address, To: address, Cost: 2, Events: []board.DomainEvent{event}},
			want:    []string{"probe", "from", "to", "cost", "events"},
			notWant: []string{"Probe", "From", "To", "Cost", "Events"},
		},
		{
			name:    "rotate",
			payload: rotation.Response{Outcome: outcome, Version: 2},
			want:    []string{"outcome", "version"},
			notWant: []string{"Outcome", "Version"},
		},
		{
			name: "reachable",
			payload: reach.Response{
				Origin: address,
				Budget: 3,
				Cells:  []movement.ReachableCell{{Address: address, Cost: 0}},
			},
			want:    []string{"origin", "budget", "rotation", "cells"},
			notWant: []string{"Origin", "Budget", "Cells", "destination"},
		},
		{
			name:    "status",
			payload: status.Response{NextRotationLevel: 1, Version: 1, Probes: []status.ProbeStatus{}},
			want:    []string{"rotation", "next_rotation_level", "version", "probes"},
			notWant: []string{"Rotation", "NextRotationLevel", "Probes"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			for _, key := range tc.want {
				if _, ok := got[key]; !ok {
					t.Fatalf("expected key %q in %s", key, string(b))
				}
			}
			for _, key := range tc.notWant {
				if _, ok := got[key]; ok {
					t.Fatalf("unexpected key %q in %s", key, string(b))
				}
			}
			if tc.name == "rotate" {
				outcomeMap := asMap(got["outcome"])
				if _, ok := outcomeMap["next_rotation_level"]; !ok {
					t.Fatalf("expected nested key outcome.next_rotation_level in %s", string(b))
				}
				if _, ok := outcomeMap["NextRotationLevel"]; ok {
					t.Fatalf("unexpected nested key outcome.NextRotationLevel in %s", string(b))
				}
			}
		})
	}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
